package rainbow

// Document is the serialized form of a [Table] used by the json, yaml and
// jsonl formats. The delimiter is spelled as a string so it survives JSON.
type Document struct {
	Delimiter   string `json:"delimiter" yaml:"delimiter"`
	ColumnCount int    `json:"columnCount" yaml:"columnCount"`
	Rows        []Row  `json:"rows" yaml:"rows"`
	Notice      string `json:"notice,omitempty" yaml:"notice,omitempty"`
}

// NewDocument returns the serializable form of t.
func NewDocument(t Table) Document {
	rows := t.Rows
	if rows == nil {
		rows = []Row{}
	}
	return Document{
		Delimiter:   string(t.Delimiter),
		ColumnCount: t.ColumnCount,
		Rows:        rows,
	}
}

func (v view) document() Document {
	d := NewDocument(v.table)
	d.Notice = v.notice
	return d
}

// TemplateRow is the value a go-template format executes against, once per
// row.
type TemplateRow struct {
	Index     int
	Cells     []string
	Raw       string
	Delimiter string
}
