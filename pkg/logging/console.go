package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/NovaOrdis/std.shlib/pkg/style"
)

// TagFieldName carries the tag of events that have no zerolog level of their
// own (TODO and dry-run notices)
const TagFieldName = "tag"

const (
	tagTodo   = "todo"
	tagDryRun = "dry-run"
)

// consoleWriter renders zerolog JSON events as tagged diagnostic lines
type consoleWriter struct {
	out   io.Writer
	color bool
}

func newConsoleWriter(out io.Writer, color bool) *consoleWriter {
	return &consoleWriter{out: out, color: color}
}

func (w *consoleWriter) Write(p []byte) (int, error) {
	var evt map[string]interface{}
	d := json.NewDecoder(bytes.NewReader(p))
	d.UseNumber()
	if err := d.Decode(&evt); err != nil {
		return 0, fmt.Errorf("cannot decode event: %w", err)
	}

	var buf strings.Builder
	if tag := w.tag(evt); tag != "" {
		buf.WriteString(style.Tag(tag, w.color))
		buf.WriteByte(' ')
	}
	if msg, ok := evt[zerolog.MessageFieldName].(string); ok {
		buf.WriteString(msg)
	}
	w.writeFields(&buf, evt)
	buf.WriteByte('\n')

	if _, err := io.WriteString(w.out, buf.String()); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w *consoleWriter) tag(evt map[string]interface{}) string {
	switch evt[TagFieldName] {
	case tagTodo:
		return style.TagTodo
	case tagDryRun:
		return style.TagDryRun
	}
	switch evt[zerolog.LevelFieldName] {
	case zerolog.LevelWarnValue:
		return style.TagWarning
	case zerolog.LevelErrorValue, zerolog.LevelFatalValue, zerolog.LevelPanicValue:
		return style.TagError
	}
	return ""
}

func (w *consoleWriter) writeFields(buf *strings.Builder, evt map[string]interface{}) {
	fields := make([]string, 0, len(evt))
	for field := range evt {
		switch field {
		case zerolog.LevelFieldName, zerolog.TimestampFieldName, zerolog.MessageFieldName,
			zerolog.CallerFieldName, TagFieldName:
			continue
		}
		fields = append(fields, field)
	}
	if len(fields) == 0 {
		return
	}
	sort.Strings(fields)

	var rendered strings.Builder
	for i, field := range fields {
		if i > 0 {
			rendered.WriteByte(' ')
		}
		rendered.WriteString(field)
		rendered.WriteByte('=')
		switch v := evt[field].(type) {
		case string:
			if strings.ContainsAny(v, " \t\n\"") || v == "" {
				rendered.WriteString(fmt.Sprintf("%q", v))
			} else {
				rendered.WriteString(v)
			}
		default:
			b, err := json.Marshal(v)
			if err != nil {
				rendered.WriteString(fmt.Sprint(v))
			} else {
				rendered.Write(b)
			}
		}
	}

	buf.WriteByte(' ')
	buf.WriteString(style.Muted(rendered.String(), w.color))
}
