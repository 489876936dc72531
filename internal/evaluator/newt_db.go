package evaluator

import (
	"database/sql"
	"fmt"

	"newt/internal/object"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// dbConn is one open connection slot. Statements route through tx while a
// transaction is open.
type dbConn struct {
	db *sql.DB
	tx *sql.Tx
}

// dbState is the connection table behind the db module. Each evaluator owns
// its own table, so handles never leak across evaluators.
type dbState struct {
	conns  map[int]*dbConn
	nextID int
}

func dbModule() *object.Module {
	state := &dbState{conns: make(map[int]*dbConn), nextID: 1}
	return mod("db", map[string]object.BuiltinFunction{
		"connect":  state.connect,
		"query":    state.query,
		"exec":     state.exec,
		"begin":    state.begin,
		"commit":   state.commit,
		"rollback": state.rollback,
		"close":    state.close,
	})
}

var dbDrivers = map[string]bool{
	"sqlite3":  true,
	"mysql":    true,
	"postgres": true,
}

func (s *dbState) handle(ctx object.CallContext, name string, arg object.Object) (*dbConn, *object.Error) {
	id, err := argInt(ctx, name, arg)
	if err != nil {
		return nil, err
	}
	conn, ok := s.conns[id]
	if !ok {
		return nil, ctx.NewError(object.IOError, "%s: no open connection with handle %d", name, id)
	}
	return conn, nil
}

func (s *dbState) connect(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "connect", 2, args); err != nil {
		return err
	}
	driver, err := argString(ctx, "connect", args[0])
	if err != nil {
		return err
	}
	dsn, err := argString(ctx, "connect", args[1])
	if err != nil {
		return err
	}
	if !dbDrivers[driver] {
		return ctx.NewError(object.TypeError, "connect: unknown driver %q", driver)
	}

	db, oerr := sql.Open(driver, dsn)
	if oerr != nil {
		return ctx.NewError(object.IOError, "connect: %v", oerr)
	}
	if perr := db.Ping(); perr != nil {
		db.Close()
		return ctx.NewError(object.IOError, "connect: %v", perr)
	}

	id := s.nextID
	s.nextID++
	s.conns[id] = &dbConn{db: db}
	return &object.Number{Value: float64(id)}
}

// query returns an array whose first element is the column-name array and
// whose remaining elements are the rows.
func (s *dbState) query(ctx object.CallContext, args ...object.Object) object.Object {
	if len(args) < 2 {
		return ctx.NewError(object.ArityMismatchError,
			"query expects at least 2 arguments, got %d", len(args))
	}
	conn, err := s.handle(ctx, "query", args[0])
	if err != nil {
		return err
	}
	stmt, err := argString(ctx, "query", args[1])
	if err != nil {
		return err
	}
	params, err := sqlParams(ctx, "query", args[2:])
	if err != nil {
		return err
	}

	var rows *sql.Rows
	var qerr error
	if conn.tx != nil {
		rows, qerr = conn.tx.Query(stmt, params...)
	} else {
		rows, qerr = conn.db.Query(stmt, params...)
	}
	if qerr != nil {
		return ctx.NewError(object.IOError, "query: %v", qerr)
	}
	defer rows.Close()

	columns, cerr := rows.Columns()
	if cerr != nil {
		return ctx.NewError(object.IOError, "query: %v", cerr)
	}
	header := make([]object.Object, len(columns))
	for i, col := range columns {
		header[i] = &object.String{Value: col}
	}
	result := []object.Object{&object.Array{Elements: header}}

	for rows.Next() {
		values := make([]interface{}, len(columns))
		scan := make([]interface{}, len(columns))
		for i := range values {
			scan[i] = &values[i]
		}
		if serr := rows.Scan(scan...); serr != nil {
			return ctx.NewError(object.IOError, "query: %v", serr)
		}
		row := make([]object.Object, len(columns))
		for i, v := range values {
			row[i] = sqlValue(v)
		}
		result = append(result, &object.Array{Elements: row})
	}
	if rerr := rows.Err(); rerr != nil {
		return ctx.NewError(object.IOError, "query: %v", rerr)
	}
	return &object.Array{Elements: result}
}

// exec returns [rowsAffected, lastInsertId]; a driver that does not report
// one of them yields -1 in that slot.
func (s *dbState) exec(ctx object.CallContext, args ...object.Object) object.Object {
	if len(args) < 2 {
		return ctx.NewError(object.ArityMismatchError,
			"exec expects at least 2 arguments, got %d", len(args))
	}
	conn, err := s.handle(ctx, "exec", args[0])
	if err != nil {
		return err
	}
	stmt, err := argString(ctx, "exec", args[1])
	if err != nil {
		return err
	}
	params, err := sqlParams(ctx, "exec", args[2:])
	if err != nil {
		return err
	}

	var result sql.Result
	var xerr error
	if conn.tx != nil {
		result, xerr = conn.tx.Exec(stmt, params...)
	} else {
		result, xerr = conn.db.Exec(stmt, params...)
	}
	if xerr != nil {
		return ctx.NewError(object.IOError, "exec: %v", xerr)
	}

	affected, aerr := result.RowsAffected()
	if aerr != nil {
		affected = -1
	}
	lastID, lerr := result.LastInsertId()
	if lerr != nil {
		lastID = -1
	}
	return &object.Array{Elements: []object.Object{
		&object.Number{Value: float64(affected)},
		&object.Number{Value: float64(lastID)},
	}}
}

func (s *dbState) begin(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "begin", 1, args); err != nil {
		return err
	}
	conn, err := s.handle(ctx, "begin", args[0])
	if err != nil {
		return err
	}
	if conn.tx != nil {
		return ctx.NewError(object.IOError, "begin: transaction already open")
	}
	tx, berr := conn.db.Begin()
	if berr != nil {
		return ctx.NewError(object.IOError, "begin: %v", berr)
	}
	conn.tx = tx
	return NIL
}

func (s *dbState) commit(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "commit", 1, args); err != nil {
		return err
	}
	conn, err := s.handle(ctx, "commit", args[0])
	if err != nil {
		return err
	}
	if conn.tx == nil {
		return ctx.NewError(object.IOError, "commit: no open transaction")
	}
	cerr := conn.tx.Commit()
	conn.tx = nil
	if cerr != nil {
		return ctx.NewError(object.IOError, "commit: %v", cerr)
	}
	return NIL
}

func (s *dbState) rollback(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "rollback", 1, args); err != nil {
		return err
	}
	conn, err := s.handle(ctx, "rollback", args[0])
	if err != nil {
		return err
	}
	if conn.tx == nil {
		return ctx.NewError(object.IOError, "rollback: no open transaction")
	}
	rerr := conn.tx.Rollback()
	conn.tx = nil
	if rerr != nil {
		return ctx.NewError(object.IOError, "rollback: %v", rerr)
	}
	return NIL
}

func (s *dbState) close(ctx object.CallContext, args ...object.Object) object.Object {
	if err := wantArgs(ctx, "close", 1, args); err != nil {
		return err
	}
	id, aerr := argInt(ctx, "close", args[0])
	if aerr != nil {
		return aerr
	}
	conn, ok := s.conns[id]
	if !ok {
		return ctx.NewError(object.IOError, "close: no open connection with handle %d", id)
	}
	if conn.tx != nil {
		conn.tx.Rollback()
		conn.tx = nil
	}
	delete(s.conns, id)
	if cerr := conn.db.Close(); cerr != nil {
		return ctx.NewError(object.IOError, "close: %v", cerr)
	}
	return NIL
}

// sqlParams converts call arguments to driver values.
func sqlParams(ctx object.CallContext, name string, args []object.Object) ([]interface{}, *object.Error) {
	params := make([]interface{}, len(args))
	for i, arg := range args {
		switch v := object.Unwrap(arg).(type) {
		case *object.Number:
			params[i] = v.Value
		case *object.String:
			params[i] = v.Value
		case *object.Boolean:
			params[i] = v.Value
		case *object.Nil:
			params[i] = nil
		default:
			return nil, ctx.NewError(object.TypeError,
				"%s parameter %d: unsupported type %s", name, i+1, arg.Type())
		}
	}
	return params, nil
}

// sqlValue converts a scanned driver value into a language value.
func sqlValue(v interface{}) object.Object {
	switch v := v.(type) {
	case nil:
		return NIL
	case bool:
		if v {
			return TRUE
		}
		return FALSE
	case int64:
		return &object.Number{Value: float64(v)}
	case float64:
		return &object.Number{Value: v}
	case []byte:
		return &object.String{Value: string(v)}
	case string:
		return &object.String{Value: v}
	default:
		return &object.String{Value: fmt.Sprintf("%v", v)}
	}
}
