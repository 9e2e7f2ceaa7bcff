package sheet

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	TableCourierAccounts = "courier_accounts"
	TableOpsAccounts     = "ops_accounts"
	TableTasks           = "tasks"
	TableAttendance      = "attendance"
)

const (
	FieldName     = "name"
	FieldUsername = "username"

	FieldTaskID       = "task_id"
	FieldFmsID        = "fms_id"
	FieldPackageCount = "package_count"
	FieldOperatorName = "operator_name"
	FieldHub          = "hub"
	FieldCourierName  = "courier_name"
	FieldCourierID    = "courier_id"

	FieldStaffName   = "staff_name"
	FieldJabatan     = "jabatan"
	FieldShift       = "shift"
	FieldDescription = "description"
)

// requiredFields adalah field yang dibaca oleh mapper untuk tiap tabel.
var requiredFields = map[string][]string{
	TableCourierAccounts: {FieldName, FieldUsername},
	TableOpsAccounts:     {FieldName, FieldUsername},
	TableTasks: {
		FieldTaskID, FieldFmsID, FieldPackageCount, FieldOperatorName,
		FieldHub, FieldCourierName, FieldCourierID,
	},
	TableAttendance: {FieldStaffName, FieldJabatan, FieldShift, FieldDescription},
}

//go:embed layout.yaml
var defaultLayout []byte

type Column struct {
	Field    string `yaml:"field"`
	Index    int    `yaml:"index"`
	Fallback string `yaml:"fallback,omitempty"`
}

type Table struct {
	GID     string   `yaml:"gid"`
	Keys    []string `yaml:"keys"`
	Columns []Column `yaml:"columns"`
}

type Layout struct {
	SheetID string           `yaml:"sheet_id"`
	Tables  map[string]Table `yaml:"tables"`
}

// DefaultLayout mengembalikan layout bawaan yang di-embed ke binary.
func DefaultLayout() (Layout, error) {
	return ParseLayout(defaultLayout)
}

// LoadLayout membaca layout dari path. Path kosong berarti layout bawaan.
func LoadLayout(path string) (Layout, error) {
	if path == "" {
		return DefaultLayout()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read sheet layout %s: %w", path, err)
	}
	return ParseLayout(raw)
}

func ParseLayout(raw []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(raw, &l); err != nil {
		return Layout{}, fmt.Errorf("decode sheet layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Validate memastikan semua tabel dan field yang dibaca mapper terdefinisi.
func (l Layout) Validate() error {
	if l.SheetID == "" {
		return fmt.Errorf("sheet layout: sheet_id is empty")
	}
	for name, fields := range requiredFields {
		t, ok := l.Tables[name]
		if !ok {
			return fmt.Errorf("sheet layout: table %q is missing", name)
		}
		if t.GID == "" {
			return fmt.Errorf("sheet layout: table %q has no gid", name)
		}
		for _, c := range t.Columns {
			if c.Index < 0 {
				return fmt.Errorf("sheet layout: %s.%s has negative index", name, c.Field)
			}
			if c.Fallback != "" {
				if _, ok := t.column(c.Fallback); !ok {
					return fmt.Errorf("sheet layout: %s.%s falls back to unknown field %q", name, c.Field, c.Fallback)
				}
			}
		}
		for _, f := range fields {
			if _, ok := t.column(f); !ok {
				return fmt.Errorf("sheet layout: %s.%s is not mapped", name, f)
			}
		}
		if len(t.Keys) == 0 {
			return fmt.Errorf("sheet layout: table %q has no key field", name)
		}
		for _, k := range t.Keys {
			if _, ok := t.column(k); !ok {
				return fmt.Errorf("sheet layout: %s key %q is not mapped", name, k)
			}
		}
	}
	return nil
}

// Table mengembalikan definisi tabel berdasarkan nama.
func (l Layout) Table(name string) (Table, bool) {
	t, ok := l.Tables[name]
	return t, ok
}

func (t Table) column(field string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Field == field {
			return c, true
		}
	}
	return Column{}, false
}

// Bind menempelkan skema tabel ke satu baris mentah.
func (t Table) Bind(cells []string) Row {
	return Row{table: t, cells: cells}
}

// Row membaca field berdasarkan nama. Kolom yang tidak ada menghasilkan default, bukan panic.
type Row struct {
	table Table
	cells []string
}

func (r Row) cell(field string) string {
	c, ok := r.table.column(field)
	if !ok || c.Index >= len(r.cells) {
		return ""
	}
	return r.cells[c.Index]
}

func (r Row) String(field string) string {
	v := r.cell(field)
	if v != "" {
		return v
	}
	if c, ok := r.table.column(field); ok && c.Fallback != "" {
		return r.cell(c.Fallback)
	}
	return ""
}

// Int membaca angka di awal nilai (mis. "12 pcs" -> 12). Gagal parse -> 0.
func (r Row) Int(field string) int {
	return leadingInt(r.String(field))
}

// HasKeys bernilai true bila semua key field tabel terisi.
func (r Row) HasKeys() bool {
	for _, k := range r.table.Keys {
		if r.String(k) == "" {
			return false
		}
	}
	return true
}

func leadingInt(s string) int {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
