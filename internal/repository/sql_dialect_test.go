package repository

import (
	"strings"
	"testing"
)

func TestLikeOperatorByDialect(t *testing.T) {
	cases := []struct {
		dialect string
		want    string
	}{
		{"postgres", "ILIKE"},
		{"postgresql", "ILIKE"},
		{" Postgres ", "ILIKE"},
		{"sqlite", "LIKE"},
		{"", "LIKE"},
	}
	for _, tc := range cases {
		if got := likeOperatorByDialect(tc.dialect); got != tc.want {
			t.Fatalf("dialect %q: want %s got %s", tc.dialect, tc.want, got)
		}
	}
}

func TestBuildLikeConditionByDialect(t *testing.T) {
	condition, argCount := buildLikeConditionByDialect("postgres", "name", "description", " ", "brand")
	if argCount != 3 {
		t.Fatalf("arg count want 3 got %d", argCount)
	}
	if condition != "name ILIKE ? OR description ILIKE ? OR brand ILIKE ?" {
		t.Fatalf("unexpected condition: %s", condition)
	}

	condition, argCount = buildLikeConditionByDialect("sqlite", "order_no")
	if argCount != 1 || condition != "order_no LIKE ?" {
		t.Fatalf("unexpected sqlite condition: %s (args %d)", condition, argCount)
	}
}

func TestBuildLikeConditionResolvesDialectFromDB(t *testing.T) {
	// nil DB 默认按 sqlite 处理
	condition, argCount := buildLikeCondition(nil, "name")
	if argCount != 1 || condition != "name LIKE ?" {
		t.Fatalf("unexpected nil-db condition: %s (args %d)", condition, argCount)
	}

	db := newRepositoryTestDB(t)
	condition, _ = buildLikeCondition(db, "name")
	if !strings.Contains(condition, "LIKE ?") {
		t.Fatalf("sqlite connection should use LIKE, got %s", condition)
	}
}

func TestRepeatLikeArgs(t *testing.T) {
	args := repeatLikeArgs("%dress%", 3)
	if len(args) != 3 {
		t.Fatalf("args len want 3 got %d", len(args))
	}
	for idx, arg := range args {
		if arg != "%dress%" {
			t.Fatalf("args[%d] want %%dress%% got %v", idx, arg)
		}
	}
}
