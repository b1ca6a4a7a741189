package tile

import (
	"encoding/json"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const (
	sqlInsertObject = `INSERT INTO objects (seq, id, name, type, x, y, width, height, props)
		VALUES (:seq, :id, :name, :type, :x, :y, :width, :height, :props);`
	sqlSelectObjects = `SELECT id, name, type, x, y, width, height, props FROM objects`
)

// ObjectDB is an on disk copy of a map's objects, so tools outside of the game
// (editors, scripts, sqlite3 itself) can query them.
type ObjectDB struct {
	filename string
	db       *sqlx.DB
}

// OpenObjectDB given it's filename (database file) on disk.
// Will create if it doesn't exist.
func OpenObjectDB(fname string) (*ObjectDB, error) {
	db, err := sqlx.Open("sqlite3", fname)
	if err != nil {
		return nil, err
	}

	odb := &ObjectDB{db: db, filename: fname}
	if err := odb.init(); err != nil {
		db.Close()
		return nil, err
	}
	return odb, nil
}

// Filename returns the path to the database on disk
func (o *ObjectDB) Filename() string {
	return o.filename
}

// Close the underlying database
func (o *ObjectDB) Close() error {
	return o.db.Close()
}

// Put replaces everything stored with the given objects, in one transaction.
func (o *ObjectDB) Put(objects []Object) error {
	txn, err := o.db.Beginx()
	if err != nil {
		return err
	}

	_, err = txn.Exec("DELETE FROM objects;")
	if err != nil {
		txn.Rollback()
		return err
	}

	for i, obj := range objects {
		row, err := newDBObject(i, obj)
		if err != nil {
			txn.Rollback()
			return err
		}
		_, err = txn.NamedExec(sqlInsertObject, row)
		if err != nil {
			txn.Rollback()
			return err
		}
	}

	return txn.Commit()
}

// ByName returns stored objects with the given name in map order
func (o *ObjectDB) ByName(name string) ([]Object, error) {
	return o.query(sqlSelectObjects+" WHERE name=? ORDER BY seq;", name)
}

// ByType returns stored objects of the given type in map order
func (o *ObjectDB) ByType(kind string) ([]Object, error) {
	return o.query(sqlSelectObjects+" WHERE type=? ORDER BY seq;", kind)
}

// All returns every stored object in map order
func (o *ObjectDB) All() ([]Object, error) {
	return o.query(sqlSelectObjects + " ORDER BY seq;")
}

func (o *ObjectDB) query(q string, args ...interface{}) ([]Object, error) {
	rows := []dbObject{}
	if err := o.db.Select(&rows, q, args...); err != nil {
		return nil, err
	}

	result := make([]Object, 0, len(rows))
	for _, r := range rows {
		obj, err := r.toObject()
		if err != nil {
			return nil, err
		}
		result = append(result, obj)
	}
	return result, nil
}

// init creates some DB tables for us if they don't exist
func (o *ObjectDB) init() error {
	createObjects := `CREATE TABLE IF NOT EXISTS objects(
		seq INTEGER PRIMARY KEY,
		id INTEGER NOT NULL,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		x REAL NOT NULL,
		y REAL NOT NULL,
		width REAL NOT NULL,
		height REAL NOT NULL,
		props TEXT
	    );`
	_, err := o.db.Exec(createObjects)
	if err != nil {
		return err
	}

	_, err = o.db.Exec(`CREATE INDEX IF NOT EXISTS objects_name ON objects (name);`)
	if err != nil {
		return err
	}

	_, err = o.db.Exec(`CREATE INDEX IF NOT EXISTS objects_type ON objects (type);`)
	return err
}

// dbObject encodes a single object.
// Properties are kept as a JSON list so their order survives.
type dbObject struct {
	Seq    int     `db:"seq"`
	ID     int     `db:"id"`
	Name   string  `db:"name"`
	Type   string  `db:"type"`
	X      float64 `db:"x"`
	Y      float64 `db:"y"`
	Width  float64 `db:"width"`
	Height float64 `db:"height"`
	Props  string  `db:"props"`
}

// newDBObject crafts a dbObject struct given it's inputs
func newDBObject(seq int, obj Object) (dbObject, error) {
	props := obj.Properties
	if props == nil {
		props = []Property{}
	}
	data, err := json.Marshal(props)
	if err != nil {
		return dbObject{}, err
	}

	return dbObject{
		Seq:    seq,
		ID:     obj.ID,
		Name:   obj.Name,
		Type:   obj.Type,
		X:      float64(obj.Bounds.X),
		Y:      float64(obj.Bounds.Y),
		Width:  float64(obj.Bounds.Width),
		Height: float64(obj.Bounds.Height),
		Props:  string(data),
	}, nil
}

func (r dbObject) toObject() (Object, error) {
	props := []Property{}
	if r.Props != "" {
		if err := json.Unmarshal([]byte(r.Props), &props); err != nil {
			return Object{}, err
		}
	}
	return Object{
		ID:         r.ID,
		Name:       r.Name,
		Type:       r.Type,
		Bounds:     NewFrame(float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height)),
		Properties: props,
	}, nil
}
