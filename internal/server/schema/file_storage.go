package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/dmitrijs2005/filekeeper/internal/common"
	"github.com/dmitrijs2005/filekeeper/internal/server/models"
	"github.com/google/uuid"
)

const (
	FileStorageName  = "file_storage"
	FileStorageTable = "file_storage"
)

// Field names of the file storage schema. They double as column names.
const (
	FieldID               = "id"
	FieldFileID           = "file_id"
	FieldRefType          = "ref_type"
	FieldRefID            = "ref_id"
	FieldOriginalFileName = "original_file_name"
	FieldFileName         = "file_name"
	FieldFilePath         = "file_path"
	FieldFileSize         = "file_size"
	FieldFileType         = "file_type"
	FieldDescription      = "description"
	FieldDeleted          = "deleted"
	FieldCreateDate       = "create_date"
	FieldCreateUID        = "create_uid"
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindOptString
	kindInt
	kindOptInt
	kindBool
	kindAny
)

type field struct {
	kind fieldKind
	// readOnly fields are accepted in a record but never written from it.
	readOnly bool
}

var fileStorageFields = map[string]field{
	FieldID:               {kind: kindAny, readOnly: true},
	FieldFileID:           {kind: kindString},
	FieldRefType:          {kind: kindString},
	FieldRefID:            {kind: kindOptInt},
	FieldOriginalFileName: {kind: kindString},
	FieldFileName:         {kind: kindString},
	FieldFilePath:         {kind: kindString},
	FieldFileSize:         {kind: kindInt},
	FieldFileType:         {kind: kindString},
	FieldDescription:      {kind: kindOptString},
	FieldDeleted:          {kind: kindBool},
	FieldCreateDate:       {kind: kindAny, readOnly: true},
	FieldCreateUID:        {kind: kindAny, readOnly: true},
}

// FileStorage is the schema of file metadata tables.
type FileStorage struct {
	name  string
	table string
	names []string
}

// NewFileStorage returns a file storage schema bound to a table. Several
// entity kinds may share the layout under different tables.
func NewFileStorage(name, table string) *FileStorage {
	names := make([]string, 0, len(fileStorageFields))
	for n := range fileStorageFields {
		names = append(names, n)
	}
	sort.Strings(names)
	return &FileStorage{name: name, table: table, names: names}
}

func (s *FileStorage) Name() string  { return s.name }
func (s *FileStorage) Table() string { return s.table }

func (s *FileStorage) FieldNames() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s *FileStorage) Writable(name string) bool {
	f, ok := fileStorageFields[name]
	return ok && !f.readOnly
}

func (s *FileStorage) Validate(index int, rec models.Record) []common.FieldViolation {
	var out []common.FieldViolation

	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		f, ok := fileStorageFields[k]
		if !ok {
			out = append(out, common.FieldViolation{Index: index, Field: k, Reason: "unknown field"})
			continue
		}
		if f.readOnly {
			continue
		}
		if reason := checkKind(f.kind, rec[k]); reason != "" {
			out = append(out, common.FieldViolation{Index: index, Field: k, Reason: reason})
			continue
		}
		switch k {
		case FieldFileSize:
			if n, _ := toInt64(rec[k]); n < 0 {
				out = append(out, common.FieldViolation{Index: index, Field: k, Reason: "must be non-negative"})
			}
		case FieldFileID:
			if id, _ := rec[k].(string); id != "" {
				if _, err := uuid.Parse(id); err != nil {
					out = append(out, common.FieldViolation{Index: index, Field: k, Reason: "not a UUID"})
				}
			}
		}
	}
	return out
}

func (s *FileStorage) Apply(dst *models.FileMetadata, rec models.Record) error {
	for k, v := range rec {
		f, ok := fileStorageFields[k]
		if !ok {
			return fmt.Errorf("%w: unknown field %q", common.ErrSchema, k)
		}
		if f.readOnly {
			continue
		}
		switch k {
		case FieldFileID:
			dst.FileID, _ = v.(string)
		case FieldRefType:
			dst.RefType, _ = v.(string)
		case FieldRefID:
			if v == nil {
				dst.RefID = nil
				continue
			}
			n, err := toInt64(v)
			if err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
			dst.RefID = &n
		case FieldOriginalFileName:
			dst.OriginalFileName, _ = v.(string)
		case FieldFileName:
			dst.FileName, _ = v.(string)
		case FieldFilePath:
			dst.FilePath, _ = v.(string)
		case FieldFileSize:
			n, err := toInt64(v)
			if err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
			dst.FileSize = n
		case FieldFileType:
			dst.FileType, _ = v.(string)
		case FieldDescription:
			if v == nil {
				dst.Description = nil
				continue
			}
			d, _ := v.(string)
			dst.Description = &d
		case FieldDeleted:
			dst.Deleted, _ = v.(bool)
		}
	}
	return nil
}

func checkKind(kind fieldKind, v any) string {
	switch kind {
	case kindString:
		if _, ok := v.(string); !ok {
			return "must be a string"
		}
	case kindOptString:
		if v == nil {
			return ""
		}
		if _, ok := v.(string); !ok {
			return "must be a string or null"
		}
	case kindInt:
		if _, err := toInt64(v); err != nil {
			return "must be an integer"
		}
	case kindOptInt:
		if v == nil {
			return ""
		}
		if _, err := toInt64(v); err != nil {
			return "must be an integer or null"
		}
	case kindBool:
		if _, ok := v.(bool); !ok {
			return "must be a boolean"
		}
	}
	return ""
}

// toInt64 accepts the numeric types produced by Go callers and by
// encoding/json.
func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.IsNaN(n) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		if n >= float64(math.MaxInt64) || n < float64(math.MinInt64) {
			return 0, fmt.Errorf("%v overflows int64", n)
		}
		return int64(n), nil
	case json.Number:
		return n.Int64()
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
}
