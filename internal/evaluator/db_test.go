package evaluator

import (
	"testing"

	"newt/internal/object"
)

// dbEnv opens an in-memory sqlite database and returns the shared
// environment with `h` bound to the connection handle.
func dbEnv(t *testing.T) *object.Environment {
	t.Helper()
	env := object.NewEnvironment()
	testEvalEnv(t, "import db", env)

	result := testEvalEnv(t, `let h = db.connect("sqlite3", ":memory:")`, env)
	if object.IsError(result) {
		t.Fatalf("connect failed: %s", result.Inspect())
	}
	t.Cleanup(func() {
		testEvalEnv(t, "db.close(h)", env)
	})
	return env
}

func mustEval(t *testing.T, env *object.Environment, input string) object.Object {
	t.Helper()
	result := testEvalEnv(t, input, env)
	if object.IsError(result) {
		t.Fatalf("input %q: %s", input, result.Inspect())
	}
	return result
}

func TestDbQueryAndExec(t *testing.T) {
	env := dbEnv(t)

	mustEval(t, env, `db.exec(h, "create table t (id integer primary key, name text)")`)
	mustEval(t, env, `db.exec(h, "insert into t (name) values (?)", "alpha")`)

	result := mustEval(t, env, `db.exec(h, "insert into t (name) values (?)", "beta")`)
	if got := result.Inspect(); got != "[1, 2]" {
		t.Errorf("exec result wrong. expected=[1, 2], got=%s", got)
	}

	rows := mustEval(t, env, `db.query(h, "select id, name from t order by id")`)
	if got := rows.Inspect(); got != "[[id, name], [1, alpha], [2, beta]]" {
		t.Errorf("query result wrong. got=%s", got)
	}

	rows = mustEval(t, env, `db.query(h, "select name from t where id = ?", 2)`)
	if got := rows.Inspect(); got != "[[name], [beta]]" {
		t.Errorf("parameterized query wrong. got=%s", got)
	}

	rows = mustEval(t, env, `db.query(h, "select id from t where id > ?", 99)`)
	if got := rows.Inspect(); got != "[[id]]" {
		t.Errorf("empty result should still carry the header. got=%s", got)
	}
}

func TestDbNullsAndBooleans(t *testing.T) {
	env := dbEnv(t)

	mustEval(t, env, `db.exec(h, "create table t (v text)")`)
	mustEval(t, env, `db.exec(h, "insert into t (v) values (null)")`)

	rows := mustEval(t, env, `db.query(h, "select v from t")`)
	if got := rows.Inspect(); got != "[[v], [nil]]" {
		t.Errorf("null should map to nil. got=%s", got)
	}
}

func TestDbTransactions(t *testing.T) {
	env := dbEnv(t)
	mustEval(t, env, `db.exec(h, "create table t (v integer)")`)

	mustEval(t, env, "db.begin(h)")
	mustEval(t, env, `db.exec(h, "insert into t (v) values (1)")`)
	mustEval(t, env, "db.rollback(h)")

	rows := mustEval(t, env, `db.query(h, "select v from t")`)
	if got := rows.Inspect(); got != "[[v]]" {
		t.Errorf("rollback should discard the insert. got=%s", got)
	}

	mustEval(t, env, "db.begin(h)")
	mustEval(t, env, `db.exec(h, "insert into t (v) values (2)")`)
	mustEval(t, env, "db.commit(h)")

	rows = mustEval(t, env, `db.query(h, "select v from t")`)
	if got := rows.Inspect(); got != "[[v], [2]]" {
		t.Errorf("commit should keep the insert. got=%s", got)
	}

	testErrorKind(t, testEvalEnv(t, "db.commit(h)", env), object.IOError)
	testErrorKind(t, testEvalEnv(t, "db.rollback(h)", env), object.IOError)
}

func TestDbErrors(t *testing.T) {
	env := dbEnv(t)

	testErrorKind(t, testEvalEnv(t, `db.query(h, "select broken from")`, env), object.IOError)
	testErrorKind(t, testEvalEnv(t, `db.query(99, "select 1")`, env), object.IOError)
	testErrorKind(t, testEvalEnv(t, `db.connect("nope", "dsn")`, env), object.TypeError)
	testErrorKind(t, testEvalEnv(t, `db.exec(h, "insert into t values (?)", [1])`, env), object.TypeError)
}
