package identify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifySingleStatements(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		dialect  string
		wantType StatementType
		wantExec ExecutionType
	}{
		{"select", "SELECT * FROM users;", "generic", Select, Listing},
		{"insert", "INSERT INTO t VALUES (1);", "generic", Insert, Modification},
		{"update", "UPDATE t SET x = 1;", "generic", Update, Modification},
		{"delete", "DELETE FROM t WHERE x = 1;", "generic", Delete, Modification},
		{"truncate", "TRUNCATE t;", "generic", Truncate, Modification},
		{"create table", "CREATE TABLE t (id INT);", "generic", CreateTable, Modification},
		{"create database", "CREATE DATABASE db;", "generic", CreateDatabase, Modification},
		{"drop table", "DROP TABLE t;", "generic", DropTable, Modification},
		{"drop database", "DROP DATABASE db;", "generic", DropDatabase, Modification},
		{"lowercase keywords", "select 1;", "generic", Select, Listing},
		{"leading comment", "-- note\nSELECT 1;", "generic", Select, Listing},
		{"temp table", "CREATE TEMP TABLE t (x);", "sqlite", CreateTable, Modification},
		{"or replace function", "CREATE OR REPLACE FUNCTION f() RETURNS int AS $$ SELECT 1 $$;", "psql", CreateFunction, Modification},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Identify(tt.input, WithDialect(tt.dialect))
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantType, got[0].Type)
			assert.Equal(t, tt.wantExec, got[0].ExecutionType)
		})
	}
}

func TestIdentifyOffsetsAndText(t *testing.T) {
	input := "  SELECT 1;  DELETE FROM t;"
	got, err := Identify(input)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "SELECT 1;", got[0].Text)
	assert.Equal(t, 2, got[0].Start)
	assert.Equal(t, 11, got[0].End)

	assert.Equal(t, "DELETE FROM t;", got[1].Text)
	assert.Equal(t, input[got[1].Start:got[1].End], got[1].Text)

	// Statements are ordered and never overlap.
	assert.LessOrEqual(t, got[0].End, got[1].Start)
}

func TestSemicolonInsideStringOrComment(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"string", "SELECT 'a;b' FROM t;"},
		{"line comment", "SELECT 1 -- not here ;\n;"},
		{"block comment", "SELECT /* ; */ 1;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Identify(tt.input)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, Select, got[0].Type)
			assert.Equal(t, len(tt.input), got[0].End)
		})
	}
}

func TestImplicitEndOfInputTermination(t *testing.T) {
	parsed, err := Parse("SELECT 1")
	require.NoError(t, err)
	require.Len(t, parsed.Body, 1)

	st := parsed.Body[0]
	assert.Equal(t, Select, st.Type)
	assert.Equal(t, "", st.EndStatement)
	assert.Equal(t, len("SELECT 1"), st.End)
}

func TestExplicitTerminatorRecorded(t *testing.T) {
	parsed, err := Parse("SELECT 1;")
	require.NoError(t, err)
	require.Len(t, parsed.Body, 1)
	assert.Equal(t, ";", parsed.Body[0].EndStatement)
}

func TestStraySemicolonsBetweenStatements(t *testing.T) {
	got, err := Identify(";; SELECT 1; ;; DELETE FROM t; ;")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, Select, got[0].Type)
	assert.Equal(t, Delete, got[1].Type)
}

func TestSQLiteTriggerIsOneStatement(t *testing.T) {
	input := "CREATE TRIGGER trg AFTER INSERT ON t BEGIN UPDATE t2 SET x = 1; END;"

	got, err := Identify(input, WithDialect("sqlite"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, CreateTrigger, got[0].Type)
	assert.Equal(t, Modification, got[0].ExecutionType)
	assert.Equal(t, len(input), got[0].End)
}

func TestGenericSplitsTriggerBody(t *testing.T) {
	input := "CREATE TRIGGER trg AFTER INSERT ON t BEGIN UPDATE t2 SET x = 1; END;"

	// Without embedded-body rules the first semicolon terminates, and the
	// trailing END is its own fragment.
	got, err := Identify(input, WithDialect("generic"), WithStrict(false))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, CreateTrigger, got[0].Type)
	assert.Equal(t, UnknownType, got[1].Type)

	// Strict mode rejects the dangling END instead.
	_, err = Identify(input, WithDialect("generic"))
	var unrec *UnrecognizedStatementError
	require.ErrorAs(t, err, &unrec)
	assert.Equal(t, "END", unrec.Token.Value)
}

func TestNestedBlocksInFunctionBody(t *testing.T) {
	input := `CREATE FUNCTION f() RETURNS trigger AS
BEGIN
  IF NEW.x > 0 THEN
    UPDATE t SET a = 1;
  END IF;
  RETURN NEW;
END;
SELECT 1;`

	got, err := Identify(input, WithDialect("psql"), WithStrict(false))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, CreateFunction, got[0].Type)
	assert.Equal(t, Select, got[1].Type)
	assert.Contains(t, got[0].Text, "END IF;")
}

func TestMSSQLTriggerBody(t *testing.T) {
	input := "CREATE TRIGGER trg ON t AFTER INSERT AS BEGIN DELETE FROM log; INSERT INTO log VALUES (1); END;"

	got, err := Identify(input, WithDialect("mssql"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, CreateTrigger, got[0].Type)
}

func TestDefinerClauseIsTransparent(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no spaces", "CREATE DEFINER=`u`@`h` FUNCTION f() RETURNS INT RETURN 1;"},
		{"spaces around equals", "CREATE DEFINER = `u`@`h` FUNCTION f() RETURNS INT RETURN 1;"},
		{"bare principal", "CREATE DEFINER=admin@localhost FUNCTION f() RETURNS INT RETURN 1;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Identify(tt.input, WithDialect("mysql"))
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, CreateFunction, got[0].Type)
		})
	}
}

func TestStrictMode(t *testing.T) {
	t.Run("unrecognized statement errors", func(t *testing.T) {
		_, err := Identify("GRANT ALL ON db TO user;")
		var unrec *UnrecognizedStatementError
		require.ErrorAs(t, err, &unrec)
		assert.Equal(t, "GRANT", unrec.Token.Value)
		assert.Equal(t, 0, unrec.Token.Start)
	})

	t.Run("permissive mode yields UNKNOWN", func(t *testing.T) {
		got, err := Identify("GRANT ALL ON db TO user;", WithStrict(false))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, UnknownType, got[0].Type)
		assert.Equal(t, UnknownExecution, got[0].ExecutionType)
	})

	t.Run("unexpected object keyword errors", func(t *testing.T) {
		_, err := Identify("CREATE INDEX idx ON t (x);")
		var unexp *UnexpectedTokenError
		require.ErrorAs(t, err, &unexp)
		assert.Equal(t, "INDEX", unexp.Token.Value)
		assert.Contains(t, unexp.Expected, "TABLE")
	})

	t.Run("permissive mode synthesizes the type", func(t *testing.T) {
		got, err := Identify("CREATE INDEX idx ON t (x);", WithStrict(false))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, StatementType("CREATE_INDEX"), got[0].Type)
		assert.Equal(t, UnknownExecution, got[0].ExecutionType)
	})
}

func TestUnknownDialect(t *testing.T) {
	_, err := Identify("SELECT 1;", WithDialect("oracle"))
	var unknown *UnknownDialectError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "oracle", unknown.Name)
}

func TestExecutionTypeTable(t *testing.T) {
	assert.Equal(t, Listing, ExecutionTypeOf(Select))
	for _, st := range []StatementType{
		Insert, Update, Delete, Truncate,
		CreateTable, CreateDatabase, CreateTrigger, CreateFunction,
		DropTable, DropDatabase,
	} {
		assert.Equal(t, Modification, ExecutionTypeOf(st), string(st))
	}
	assert.Equal(t, UnknownExecution, ExecutionTypeOf(UnknownType))
	assert.Equal(t, UnknownExecution, ExecutionTypeOf(StatementType("CREATE_INDEX")))
}

func TestParseResultShape(t *testing.T) {
	input := "SELECT 1; DELETE FROM t"
	parsed, err := Parse(input)
	require.NoError(t, err)

	assert.Equal(t, "QUERY", parsed.Type)
	assert.Equal(t, 0, parsed.Start)
	assert.Equal(t, len(input), parsed.End)
	require.Len(t, parsed.Body, 2)

	// The token stream covers the whole input with no gaps.
	prevEnd := 0
	for _, tok := range parsed.Tokens {
		require.Equal(t, prevEnd, tok.Start)
		prevEnd = tok.End
	}
	assert.Equal(t, len(input), prevEnd)
}

func TestCommentOnlyInput(t *testing.T) {
	parsed, err := Parse("-- nothing here\n/* at all */")
	require.NoError(t, err)
	assert.Empty(t, parsed.Body)
	assert.NotEmpty(t, parsed.Tokens)
}

func TestTruncatedOpenerSealsAsUnknown(t *testing.T) {
	got, err := Identify("CREATE;", WithStrict(false))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, UnknownType, got[0].Type)
}
