package gotemplate_test

import (
	"io"
	"strings"
	"testing"
	"testing/fstest"

	gotemplate "github.com/goliatone/go-signupform/pkg/render/template/gotemplate"
	"github.com/goliatone/go-signupform/pkg/testsupport"
)

func TestEngine_RenderTemplateFromFS(t *testing.T) {
	files := fstest.MapFS{
		"templates/greeting.tmpl": {Data: []byte(`{{ prefix }} {{ user.name|trim }}{% if user.error %}!{% endif %}`)},
	}

	engine, err := gotemplate.New(
		gotemplate.WithFS(files),
		gotemplate.WithGlobalData(map[string]any{"prefix": "Olá"}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	type user struct {
		Name  string `json:"name"`
		Error string `json:"error,omitempty"`
	}

	var sink strings.Builder
	out, err := engine.RenderTemplate("templates/greeting", map[string]any{
		"user": user{Name: "  Ana "},
	}, &sink)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Olá Ana" {
		t.Fatalf("unexpected output %q", out)
	}
	if sink.String() != out {
		t.Fatalf("expected writer to receive the output, got %q", sink.String())
	}
}

func TestEngine_RenderStringEscapesByDefault(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderString(`<p>{{ value }}</p>`, map[string]any{"value": "<b>x</b>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "<p>&lt;b&gt;x&lt;/b&gt;</p>" {
		t.Fatalf("expected escaped output, got %q", out)
	}
}

func TestEngine_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}

func TestEngine_MissingTemplate(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if _, err := engine.RenderTemplate("templates/missing", nil); err == nil {
		t.Fatalf("expected missing template error")
	}
}

func TestEngine_StructIntegersRenderWithoutFraction(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	type row struct {
		Index int `json:"index"`
	}

	out, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderString(`remove:{{ row.index }}`, map[string]any{"row": row{Index: 2}}, w)
	})
	if out != "remove:2" {
		t.Fatalf("unexpected output %q", out)
	}
	if written != out {
		t.Fatalf("expected writer to receive %q, got %q", out, written)
	}
}
