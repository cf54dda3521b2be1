package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/seuros/gopher-shapes/src/shapes"
	"gopkg.in/yaml.v3"
)

type shapeRecord struct {
	Key      string        `json:"key" yaml:"key"`
	Commands []interface{} `json:"commands" yaml:"commands,flow"`

	tokens shapes.Commands
}

func toRecord(key string, cmds shapes.Commands) shapeRecord {
	return shapeRecord{Key: key, Commands: cmds.Values(), tokens: cmds}
}

func writeTable(w io.Writer, records []shapeRecord) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	_, _ = fmt.Fprintln(tw, strings.Join([]string{"KEY", "TOKENS", "COMMANDS"}, "\t"))
	for _, rec := range records {
		var b strings.Builder
		for i, tok := range rec.tokens {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(stringifyToken(tok))
		}
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\n", rec.Key, len(rec.tokens), b.String())
	}
	return tw.Flush()
}

// stringifyToken shows normalized colors with both forms, e.g. 16711680(#ff0000).
func stringifyToken(tok shapes.Token) string {
	if tok.Kind == shapes.KindColor {
		return fmt.Sprintf("%d(%s)", tok.Color, tok.String())
	}
	return tok.String()
}

func writeJSONLines(w io.Writer, records []shapeRecord) error {
	enc := json.NewEncoder(w)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

func writeJSONArray(w io.Writer, records []shapeRecord) error {
	if records == nil {
		records = []shapeRecord{}
	}
	b, err := json.Marshal(records)
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func writeYAML(w io.Writer, records []shapeRecord) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}
