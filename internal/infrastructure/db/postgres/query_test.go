package postgres

import (
	"errors"
	"strings"
	"testing"

	"github.com/userhub/accounts-api/internal/core/domain"
)

func TestBuildFindQuery_SingleField(t *testing.T) {
	sql, args, err := buildFindQuery(map[string]any{"email": "a@b.co"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "SELECT " + userColumns + " FROM user_information WHERE email = $1"
	if sql != want {
		t.Fatalf("unexpected sql:\n got: %s\nwant: %s", sql, want)
	}
	if len(args) != 1 || args[0] != "a@b.co" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildFindQuery_ConjunctionIsDeterministic(t *testing.T) {
	sql, args, err := buildFindQuery(map[string]any{
		"username":  "ab",
		"email":     "a@b.co",
		"firstname": "A",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Keys are sorted, so placeholders line up with the args slice.
	if !strings.HasSuffix(sql, "WHERE email = $1 AND firstname = $2 AND username = $3") {
		t.Fatalf("unexpected sql: %s", sql)
	}
	if args[0] != "a@b.co" || args[1] != "A" || args[2] != "ab" {
		t.Fatalf("args out of order: %v", args)
	}
}

func TestBuildFindQuery_RejectsUnknownField(t *testing.T) {
	_, _, err := buildFindQuery(map[string]any{"password": "x"})
	if !errors.Is(err, domain.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}

	_, _, err = buildFindQuery(map[string]any{"email; DROP TABLE user_information": "x"})
	if !errors.Is(err, domain.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField for hostile key, got %v", err)
	}
}

func TestBuildFindQuery_RejectsEmptyPredicate(t *testing.T) {
	if _, _, err := buildFindQuery(nil); !errors.Is(err, domain.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestBuildFindQuery_ValuesNeverReachQueryText(t *testing.T) {
	hostile := "' OR '1'='1' --"
	sql, args, err := buildFindQuery(map[string]any{"email": hostile})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(sql, hostile) || strings.Contains(sql, "OR '1'") {
		t.Fatalf("value leaked into query text: %s", sql)
	}
	if len(args) != 1 || args[0] != hostile {
		t.Fatalf("hostile value must be carried as a bound arg: %v", args)
	}
}
