package vanilla_test

import (
	"io"
	"io/fs"
	"path"
	"regexp"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/render"
	"github.com/goliatone/go-signupform/pkg/renderers/vanilla"
	"github.com/goliatone/go-signupform/pkg/testsupport"
)

func newRenderer(t *testing.T, options ...vanilla.Option) *vanilla.Renderer {
	t.Helper()
	renderer, err := vanilla.New(options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return renderer
}

func TestRenderer_Metadata(t *testing.T) {
	renderer := newRenderer(t)
	if renderer.Name() != "vanilla" {
		t.Fatalf("unexpected name %q", renderer.Name())
	}
	if renderer.ContentType() != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", renderer.ContentType())
	}
}

func TestRenderer_RendersFieldsAndInitialRow(t *testing.T) {
	values := model.RawValues{Techs: []model.RawTech{{ID: 1, Experience: model.DefaultTechExperience}}}
	form := testsupport.MustBuildForm(t, testsupport.Snapshot(values, nil))

	output := testsupport.MustRender(t, newRenderer(t), form, render.RenderOptions{})

	testsupport.AssertContains(t, output,
		`<form id="create-user" class="signup-form" method="post" action="/" novalidate>`,
		`name="name" type="text"`,
		`name="email" type="text"`,
		`name="password" type="password"`,
		`name="techs.0.title" type="text"`,
		`name="techs.0.experience" type="number" class="signup-input w-10" value="1"`,
		`name="_action" value="add"`,
		`name="_action" value="submit"`,
		`data-signupform-stylesheet`,
	)
	testsupport.AssertNotContains(t, output,
		`value="remove:0"`,
		`class="signup-error"`,
		`class="signup-output"`,
		`name="_output"`,
	)
}

func TestRenderer_RemoveButtonsOnlyWithMultipleRows(t *testing.T) {
	values := testsupport.ValidRawValues()
	form := testsupport.MustBuildForm(t, testsupport.Snapshot(values, nil))

	output := testsupport.MustRender(t, newRenderer(t), form, render.RenderOptions{})

	testsupport.AssertContains(t, output,
		`value="remove:0"`,
		`value="remove:1"`,
		`data-row-id="2" data-row-index="1"`,
	)
}

func TestRenderer_InlineErrors(t *testing.T) {
	errs := map[string]string{
		model.PathEmail:      "E-mail inválido",
		model.PathTechs:      "Pelo menos 2 tecnologias devem ser informadas",
		"techs.0.title":      "O título é obrigatório",
		"techs.0.experience": "A experiência deve ser de pelo menos 1 ano",
	}
	values := model.RawValues{Email: "nope", Techs: []model.RawTech{{ID: 1, Experience: "0"}}}
	form := testsupport.MustBuildForm(t, testsupport.Snapshot(values, errs))

	output := testsupport.MustRender(t, newRenderer(t), form, render.RenderOptions{})

	testsupport.AssertContains(t, output,
		`data-error-for="email">E-mail inválido</span>`,
		`data-error-for="techs">Pelo menos 2 tecnologias devem ser informadas</span>`,
		`data-error-for="techs.0.title">O título é obrigatório</span>`,
		`data-error-for="techs.0.experience">A experiência deve ser de pelo menos 1 ano</span>`,
		`aria-invalid="true" aria-describedby="email-error"`,
	)
	testsupport.AssertNotContains(t, output, `data-error-for="name"`)
}

func TestRenderer_HiddenFieldsAndOutput(t *testing.T) {
	form := testsupport.MustBuildForm(t, testsupport.Snapshot(testsupport.ValidRawValues(), nil))

	output := testsupport.MustRender(t, newRenderer(t), form, render.RenderOptions{
		Hidden: map[string]string{
			"techs.1.id": "2",
			"techs.0.id": "1",
			"_seq":       "3",
		},
		Output:    `{"name":"<João>"}`,
		Submitted: true,
	})

	testsupport.AssertContains(t, output,
		`<input type="hidden" name="_seq" value="3">`,
		`<input type="hidden" name="_submitted" value="1">`,
		`<input type="hidden" name="techs.0.id" value="1">`,
		`<pre>{&quot;name&quot;:&quot;&lt;João&gt;&quot;}</pre>`,
		`<input type="hidden" name="_output" value="{&quot;name&quot;:&quot;&lt;João&gt;&quot;}">`,
	)
	if strings.Index(output, `name="techs.0.id"`) > strings.Index(output, `name="techs.1.id"`) {
		t.Fatalf("expected hidden fields in sorted order")
	}
}

func TestRenderer_EscapesValues(t *testing.T) {
	values := model.RawValues{Name: `"><script>alert(1)</script>`}
	form := testsupport.MustBuildForm(t, testsupport.Snapshot(values, nil))

	output := testsupport.MustRender(t, newRenderer(t), form, render.RenderOptions{})

	testsupport.AssertNotContains(t, output, "<script>")
}

func TestRenderer_ThemeCSSVars(t *testing.T) {
	form := testsupport.MustBuildForm(t, testsupport.Snapshot(model.RawValues{}, nil))
	cfg := &theme.RendererConfig{
		Theme:   "acme",
		Variant: "light",
		CSSVars: map[string]string{
			"--signup-accent": "#123456",
			"--ignored}":      "x",
			"plain":           "skipped",
		},
		AssetURL: func(key string) string { return "/assets/" + key },
	}

	output := testsupport.MustRender(t, newRenderer(t, vanilla.WithInlineStyles(false)), form, render.RenderOptions{Theme: cfg})

	testsupport.AssertContains(t, output,
		`<link rel="stylesheet" href="/assets/signupform.css">`,
		`data-signupform-theme="acme"`,
		`--signup-accent: #123456;`,
		`data-theme-variant="light"`,
	)
	testsupport.AssertNotContains(t, output, "plain", "--ignored", "data-signupform-stylesheet")
}

func TestRenderer_WithTemplatesFS(t *testing.T) {
	files := fstest.MapFS{
		"templates/form.tmpl": {Data: []byte(`{{ form.id }}|{{ output }}`)},
	}
	renderer := newRenderer(t, vanilla.WithTemplatesFS(files))
	form := testsupport.MustBuildForm(t, testsupport.Snapshot(model.RawValues{}, nil))

	output := testsupport.MustRender(t, renderer, form, render.RenderOptions{Output: "ok"})
	if output != "create-user|ok" {
		t.Fatalf("unexpected output %q", output)
	}
}

func TestRenderer_WithTemplatesFSResolvesNestedIncludes(t *testing.T) {
	files := fstest.MapFS{
		"templates/form.tmpl":             {Data: []byte(`[{% for field in form.fields %}{% include "components/field.tmpl" %}{% endfor %}]`)},
		"templates/components/field.tmpl": {Data: []byte(`{% include "label.tmpl" %};`)},
		"templates/components/label.tmpl": {Data: []byte(`{{ field.name }}`)},
	}
	renderer := newRenderer(t, vanilla.WithTemplatesFS(files))
	form := testsupport.MustBuildForm(t, testsupport.Snapshot(model.RawValues{}, nil))

	output := testsupport.MustRender(t, renderer, form, render.RenderOptions{})
	if output != "[name;email;password;techs;]" {
		t.Fatalf("unexpected output %q", output)
	}
}

var includePattern = regexp.MustCompile(`{%\s*include\s+"([^"]+)"`)

func TestTemplatesFS_IncludesResolveFromParentDirectory(t *testing.T) {
	files := vanilla.TemplatesFS()
	var checked int
	err := fs.WalkDir(files, "templates", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(files, name)
		if err != nil {
			return err
		}
		for _, match := range includePattern.FindAllStringSubmatch(string(data), -1) {
			target := path.Join(path.Dir(name), match[1])
			if _, err := fs.Stat(files, target); err != nil {
				t.Errorf("%s includes %q which resolves to missing %s", name, match[1], target)
			}
			checked++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk templates: %v", err)
	}
	if checked == 0 {
		t.Fatalf("expected the embedded templates to include partials")
	}
}

func TestRenderer_EmbeddedTemplatesRenderEveryPartial(t *testing.T) {
	values := testsupport.ValidRawValues()
	errs := map[string]string{"techs.1.title": "O nome da tecnologia é obrigatoria"}
	form := testsupport.MustBuildForm(t, testsupport.Snapshot(values, errs))

	output := testsupport.MustRender(t, newRenderer(t), form, render.RenderOptions{Output: `{"ok": true}`})

	testsupport.AssertContains(t, output,
		`<label for="name" class="signup-label">`,
		`class="signup-tech-row" data-row-id="1" data-row-index="0"`,
		`data-error-for="techs.1.title"`,
		`class="signup-output"`,
	)
}

func TestRenderer_WithTemplateRenderer(t *testing.T) {
	stub := &stubTemplateRenderer{result: "custom-output"}
	renderer := newRenderer(t, vanilla.WithTemplateRenderer(stub))
	form := testsupport.MustBuildForm(t, testsupport.Snapshot(model.RawValues{}, nil))

	output := testsupport.MustRender(t, renderer, form, render.RenderOptions{})
	if output != "custom-output" {
		t.Fatalf("unexpected output %q", output)
	}
	if stub.name != "templates/form" {
		t.Fatalf("unexpected template name %q", stub.name)
	}
	data, ok := stub.data.(map[string]any)
	if !ok {
		t.Fatalf("expected map data, got %T", stub.data)
	}
	if data["action_field"] != render.ActionField {
		t.Fatalf("expected action field in context, got %v", data["action_field"])
	}
}

func TestAssetsFSIncludesStylesheet(t *testing.T) {
	data, err := fs.ReadFile(vanilla.AssetsFS(), vanilla.StylesheetName)
	if err != nil {
		t.Fatalf("read stylesheet: %v", err)
	}
	if !strings.Contains(string(data), ".signup-form") {
		t.Fatalf("expected stylesheet to style the form")
	}
}

type stubTemplateRenderer struct {
	result string
	name   string
	data   any
}

func (s *stubTemplateRenderer) RenderTemplate(name string, data any, _ ...io.Writer) (string, error) {
	s.name = name
	s.data = data
	return s.result, nil
}

func (s *stubTemplateRenderer) RenderString(string, any, ...io.Writer) (string, error) {
	return "", nil
}

func (s *stubTemplateRenderer) RegisterFilter(string, func(input any, param any) (any, error)) error {
	return nil
}

func (s *stubTemplateRenderer) GlobalContext(any) error {
	return nil
}
