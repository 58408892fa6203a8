package tracing

import (
	"database/sql"
	"os"
	"sync"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
	"go.trai.ch/zerr"
)

// ErrDatabaseExists is returned when the trace database file is already there.
var ErrDatabaseExists = zerr.New("database already exists")

// SQLiteTraceWriter is a writer that writes order records to a SQLite
// database.
type SQLiteTraceWriter struct {
	*sql.DB
	statement *sql.Stmt

	lock           sync.Mutex
	dbName         string
	recordsToWrite []OrderRecord
	batchSize      int
}

// NewSQLiteTraceWriter creates a new SQLiteTraceWriter. A file name is
// generated if path is empty.
func NewSQLiteTraceWriter(path string) *SQLiteTraceWriter {
	w := &SQLiteTraceWriter{
		dbName:    path,
		batchSize: 1000,
	}

	atexit.Register(func() { w.Flush() })

	return w
}

// WithBatchSize sets how many records are buffered before they are written.
func (w *SQLiteTraceWriter) WithBatchSize(n int) *SQLiteTraceWriter {
	w.batchSize = n
	return w
}

// Name returns the file name of the database.
func (w *SQLiteTraceWriter) Name() string {
	return w.dbName
}

// Init creates the database and the orders table.
func (w *SQLiteTraceWriter) Init() error {
	if w.dbName == "" {
		w.dbName = "burger_orders_" + xid.New().String() + ".sqlite3"
	}

	_, err := os.Stat(w.dbName)
	if err == nil {
		return zerr.With(
			zerr.Wrap(ErrDatabaseExists, "cannot create trace database"),
			"path", w.dbName)
	}

	db, err := sql.Open("sqlite3", w.dbName)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open database"), "path", w.dbName)
	}

	w.DB = db

	if err := w.createTable(); err != nil {
		return err
	}

	return w.prepareStatement()
}

func (w *SQLiteTraceWriter) createTable() error {
	_, err := w.Exec(`
		create table orders
		(
			id          varchar(200) not null primary key,
			station     varchar(200) not null,
			bread       varchar(200) not null,
			patty       varchar(200) not null,
			cheese      boolean      not null,
			lettuce     boolean      not null,
			description text         not null,
			start_time  float        not null,
			end_time    float        not null
		);
	`)
	if err != nil {
		return zerr.Wrap(err, "failed to create table")
	}

	return nil
}

func (w *SQLiteTraceWriter) prepareStatement() error {
	stmt, err := w.Prepare(`
		insert into orders(
			id, station, bread, patty, cheese, lettuce,
			description, start_time, end_time
		) values (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return zerr.Wrap(err, "failed to prepare statement")
	}

	w.statement = stmt

	return nil
}

// Write buffers a record and writes the buffer once it is full.
func (w *SQLiteTraceWriter) Write(r OrderRecord) {
	w.lock.Lock()
	w.recordsToWrite = append(w.recordsToWrite, r)
	full := len(w.recordsToWrite) >= w.batchSize
	w.lock.Unlock()

	if full {
		w.Flush()
	}
}

// Flush writes all the buffered records to the database in one transaction.
func (w *SQLiteTraceWriter) Flush() {
	w.lock.Lock()
	defer w.lock.Unlock()

	if len(w.recordsToWrite) == 0 {
		return
	}

	tx, err := w.Begin()
	if err != nil {
		panic(err)
	}

	stmt := tx.Stmt(w.statement)
	for _, r := range w.recordsToWrite {
		_, err := stmt.Exec(
			r.ID,
			r.Station,
			r.Bread,
			r.Patty,
			r.Cheese,
			r.Lettuce,
			r.Description,
			r.StartTime,
			r.EndTime,
		)
		if err != nil {
			_ = tx.Rollback()
			panic(zerr.With(zerr.Wrap(err, "failed to insert order"), "id", r.ID))
		}
	}

	if err := tx.Commit(); err != nil {
		panic(err)
	}

	w.recordsToWrite = nil
}

// Records reads back all the orders stored in the database, in the order
// they were placed.
func (w *SQLiteTraceWriter) Records() ([]OrderRecord, error) {
	rows, err := w.Query(`
		select id, station, bread, patty, cheese, lettuce,
			description, start_time, end_time
		from orders
		order by start_time, rowid
	`)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to query orders")
	}
	defer rows.Close()

	var records []OrderRecord
	for rows.Next() {
		var r OrderRecord
		err := rows.Scan(
			&r.ID,
			&r.Station,
			&r.Bread,
			&r.Patty,
			&r.Cheese,
			&r.Lettuce,
			&r.Description,
			&r.StartTime,
			&r.EndTime,
		)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to scan order")
		}

		records = append(records, r)
	}

	return records, rows.Err()
}

// Close flushes the buffered records and closes the database.
func (w *SQLiteTraceWriter) Close() error {
	w.Flush()

	if w.statement != nil {
		_ = w.statement.Close()
	}

	if w.DB == nil {
		return nil
	}

	return w.DB.Close()
}
