package jsonstore

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Makepad-fr/todo/internal/model"
)

//go:embed snapshot.schema.json
var schemaSource string

const schemaURL = "snapshot.schema.json"

var snapshotSchema = jsonschema.MustCompileString(schemaURL, schemaSource)

// ErrDecode is matched by every DecodeError.
var ErrDecode = errors.New("invalid snapshot")

// ErrEncode is returned when a list holds strings JSON cannot carry as-is.
var ErrEncode = errors.New("cannot encode snapshot")

// Violation is one schema failure inside a snapshot.
type Violation struct {
	Path    string // dotted path, e.g. items[2].done
	Message string
}

// DecodeError means the bytes are not a valid snapshot.
type DecodeError struct {
	Err        error
	Violations []Violation
}

func (e *DecodeError) Error() string {
	if len(e.Violations) == 0 {
		return fmt.Sprintf("invalid snapshot: %v", e.Err)
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		if v.Path == "" {
			parts = append(parts, v.Message)
			continue
		}
		parts = append(parts, v.Path+": "+v.Message)
	}
	return "invalid snapshot: " + strings.Join(parts, "; ")
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// snapshot is the on-disk shape. Field order is the encoding order.
type snapshot struct {
	Owner string       `json:"owner"`
	Items []model.Item `json:"items"`
}

// Encode serializes l as indented JSON with a trailing newline.
// Strings must be valid UTF-8: encoding/json would otherwise replace the
// bad bytes and the snapshot would no longer decode to the same list.
func Encode(l *model.ToDoList) ([]byte, error) {
	s := snapshot{Owner: l.Owner(), Items: l.Items()}
	if !utf8.ValidString(s.Owner) {
		return nil, fmt.Errorf("%w: owner is not valid UTF-8", ErrEncode)
	}
	for i, it := range s.Items {
		if !utf8.ValidString(it.Text) {
			return nil, fmt.Errorf("%w: item %d text is not valid UTF-8", ErrEncode, i)
		}
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return append(b, '\n'), nil
}

// Decode parses and validates a snapshot.
func Decode(b []byte) (*model.ToDoList, error) {
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("json unmarshal: %w", err)}
	}
	if err := snapshotSchema.Validate(doc); err != nil {
		return nil, &DecodeError{Err: err, Violations: violations(err)}
	}

	var s snapshot
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("json unmarshal: %w", err)}
	}
	return model.Restore(s.Owner, s.Items), nil
}

func violations(err error) []Violation {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []Violation{{Message: err.Error()}}
	}
	var out []Violation
	collect(&out, ve)
	return out
}

func collect(out *[]Violation, ve *jsonschema.ValidationError) {
	if len(ve.Causes) == 0 {
		*out = append(*out, Violation{Path: pointerToPath(ve.InstanceLocation), Message: ve.Message})
		return
	}
	for _, c := range ve.Causes {
		collect(out, c)
	}
}

// pointerToPath turns /items/2/done into items[2].done.
func pointerToPath(ptr string) string {
	if ptr == "" || ptr == "/" {
		return ""
	}
	var b strings.Builder
	for _, seg := range strings.Split(strings.TrimPrefix(ptr, "/"), "/") {
		seg = strings.ReplaceAll(strings.ReplaceAll(seg, "~1", "/"), "~0", "~")
		if isIndex(seg) {
			b.WriteString("[" + seg + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
