package sqldb

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

var (
	ErrNoColumn    = errors.New("column can not be empty")
	ErrBadName     = errors.New("invalid identifier")
	ErrArgMismatch = errors.New("argument count does not match columns")
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`)

type DBer interface {
	CreateTable(t TableData) error
	Insert(t TableData) error
}

type Sqldb struct {
	options
	db *sql.DB
}

type Field struct {
	Title string
	Type  string
}

type TableData struct {
	TableName   string
	ColumnNames []Field
	Args        []interface{} // row values, row after row
	DataCount   int           // number of rows in Args
	AutoKey     bool
}

func New(opts ...Option) (*Sqldb, error) {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}

	d := &Sqldb{}
	d.options = options

	if err := d.OpenDB(); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Sqldb) OpenDB() error {
	db, err := sql.Open("mysql", d.sqlURL)
	if err != nil {
		return err
	}

	db.SetMaxOpenConns(d.maxConn)
	db.SetMaxIdleConns(d.maxConn)

	if err = db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("ping mysql failed:%w", err)
	}

	d.db = db

	return nil
}

func (d *Sqldb) Close() error {
	if d.db == nil {
		return nil
	}

	return d.db.Close()
}

func (d *Sqldb) CreateTable(t TableData) error {
	stmt, err := CreateTableSQL(t)
	if err != nil {
		return err
	}

	d.logger.Debug("create table", zap.String("sql", stmt))

	_, err = d.db.Exec(stmt)

	return err
}

func (d *Sqldb) DropTable(t TableData) error {
	if !identifier.MatchString(t.TableName) {
		return fmt.Errorf("table %q:%w", t.TableName, ErrBadName)
	}

	stmt := "DROP TABLE IF EXISTS " + quote(t.TableName)

	d.logger.Debug("drop table", zap.String("sql", stmt))

	_, err := d.db.Exec(stmt)

	return err
}

func (d *Sqldb) Insert(t TableData) error {
	stmt, err := InsertSQL(t)
	if err != nil {
		return err
	}

	d.logger.Debug("insert table", zap.String("sql", stmt), zap.Int("rows", t.DataCount))

	_, err = d.db.Exec(stmt, t.Args...)

	return err
}

// CreateTableSQL renders the CREATE TABLE statement for t.
func CreateTableSQL(t TableData) (string, error) {
	if err := check(t); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS " + quote(t.TableName) + " (")

	if t.AutoKey {
		b.WriteString("id BIGINT NOT NULL PRIMARY KEY AUTO_INCREMENT,")
	}

	for i, c := range t.ColumnNames {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(quote(c.Title) + " " + c.Type)
	}

	b.WriteString(") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;")

	return b.String(), nil
}

// InsertSQL renders a multi-row INSERT with one placeholder per value.
func InsertSQL(t TableData) (string, error) {
	if err := check(t); err != nil {
		return "", err
	}

	if t.DataCount <= 0 || len(t.Args) != t.DataCount*len(t.ColumnNames) {
		return "", fmt.Errorf("%d args for %d rows of %d columns:%w",
			len(t.Args), t.DataCount, len(t.ColumnNames), ErrArgMismatch)
	}

	cols := make([]string, len(t.ColumnNames))
	for i, c := range t.ColumnNames {
		cols[i] = quote(c.Title)
	}

	row := "(" + strings.Repeat(",?", len(cols))[1:] + ")"
	rows := strings.Repeat(","+row, t.DataCount)[1:]

	return "INSERT INTO " + quote(t.TableName) + " (" + strings.Join(cols, ",") + ") VALUES " + rows + ";", nil
}

func check(t TableData) error {
	if len(t.ColumnNames) == 0 {
		return ErrNoColumn
	}

	if !identifier.MatchString(t.TableName) {
		return fmt.Errorf("table %q:%w", t.TableName, ErrBadName)
	}

	for _, c := range t.ColumnNames {
		if !identifier.MatchString(c.Title) {
			return fmt.Errorf("column %q:%w", c.Title, ErrBadName)
		}
	}

	return nil
}

func quote(name string) string {
	return "`" + name + "`"
}
