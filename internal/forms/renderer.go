// Package forms renders editing forms for registered node and block types.
// The renderer is schema-driven: it walks a type's declared field list and
// dispatches each field to the widget template matching its type tag, so no
// per-type form code exists anywhere.
package forms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/fieldpress/fieldpress/internal/registry"
	"github.com/fieldpress/fieldpress/internal/schema"
)

// Renderer produces HTML form fragments from registered type schemas.
// It is safe for concurrent use; all state is read-only after construction.
type Renderer struct {
	registry *registry.Registry
	tmpl     *template.Template
	maxDepth int
}

// NewRenderer parses the widget template set and returns a Renderer bound to
// the given type registry.
func NewRenderer(reg *registry.Registry) (*Renderer, error) {
	tmpl, err := template.New("widgets").Parse(widgetTemplates)
	if err != nil {
		return nil, fmt.Errorf("parsing widget templates: %w", err)
	}

	return &Renderer{
		registry: reg,
		tmpl:     tmpl,
		maxDepth: schema.DefaultMaxBlockDepth,
	}, nil
}

// NodeForm renders the full editing form body for one node type, pre-filled
// with the given values. Fields render in UI order, declaration order breaking
// ties; hidden fields are skipped.
func (r *Renderer) NodeForm(typeName string, values schema.Values) (template.HTML, error) {
	nt, ok := r.registry.NodeType(typeName)
	if !ok {
		return "", fmt.Errorf("node type %q is not registered", typeName)
	}
	return r.renderFields(nt.Fields, values, "", 0)
}

// BlockForm renders the editing form body for one block type, used by editors
// that configure a block in isolation.
func (r *Renderer) BlockForm(blockType string, values schema.Values) (template.HTML, error) {
	fields, ok := r.registry.BlockFields(blockType)
	if !ok {
		return "", fmt.Errorf("block type %q is not registered", blockType)
	}
	return r.renderFields(fields, values, "", 0)
}

func (r *Renderer) renderFields(fields []schema.Field, values schema.Values, namePrefix string, depth int) (template.HTML, error) {
	ordered := make([]schema.Field, len(fields))
	copy(ordered, fields)
	sort.SliceStable(ordered, func(i, j int) bool {
		return uiOrder(ordered[i]) < uiOrder(ordered[j])
	})

	var buf bytes.Buffer
	for _, f := range ordered {
		if f.UI != nil && f.UI.Hidden {
			continue
		}
		fragment, err := r.renderField(f, values[f.Name], namePrefix, depth)
		if err != nil {
			return "", err
		}
		buf.WriteString(string(fragment))
	}

	return template.HTML(buf.String()), nil
}

func (r *Renderer) renderField(f schema.Field, value any, namePrefix string, depth int) (template.HTML, error) {
	view := fieldView{
		Field:    f,
		Name:     fieldName(namePrefix, f.Name),
		Label:    fieldLabel(f),
		Required: f.IsRequired(),
		Disabled: f.UI != nil && f.UI.Disabled,
	}

	var widget string
	switch f.Type {
	case schema.TypeText, schema.TypeSlug:
		widget = "input"
		view.InputType = "text"
		view.Value, _ = value.(string)
	case schema.TypeEmail:
		widget = "input"
		view.InputType = "email"
		view.Value, _ = value.(string)
	case schema.TypeURL:
		widget = "input"
		view.InputType = "url"
		view.Value, _ = value.(string)
	case schema.TypeDate:
		widget = "input"
		view.InputType = "date"
		view.Value, _ = value.(string)
	case schema.TypeNumber:
		widget = "input"
		view.InputType = "number"
		view.Value = numberString(value)
	case schema.TypeTextarea:
		widget = "textarea"
		view.Value, _ = value.(string)
	case schema.TypeBoolean:
		widget = "checkbox"
		view.Checked, _ = value.(bool)
	case schema.TypeSelect:
		widget = "select"
		selected, _ := value.(string)
		for _, opt := range f.Options {
			view.Options = append(view.Options, optionView{
				Value:    opt.Value,
				Label:    opt.Label,
				Selected: opt.Value == selected,
			})
		}
	case schema.TypeFile:
		widget = "file"
		view.Value, _ = value.(string)
	case schema.TypeNode:
		widget = "node"
		view.NodeTypes = strings.Join(f.NodeTypes, ",")
		view.Value = jsonString(value)
	case schema.TypeArray:
		widget = "array"
		view.Value = jsonString(value)
	case schema.TypeBlocks:
		return r.renderBlocksField(f, value, view, depth)
	default:
		widget = "unsupported"
	}

	return r.execute(widget, view)
}

// renderBlocksField renders the existing block instances as nested fieldsets
// plus the add-menu of allowed block types. Nesting past the depth limit
// renders a note instead of recursing further.
func (r *Renderer) renderBlocksField(f schema.Field, value any, view fieldView, depth int) (template.HTML, error) {
	if depth >= r.maxDepth {
		return r.execute("blocksTooDeep", view)
	}

	instances, err := schema.DecodeBlocks(value)
	if err != nil {
		// Malformed stored data still gets an editable (empty) widget.
		instances = nil
	}

	for _, instance := range instances {
		bt, ok := r.registry.BlockType(instance.Type)
		if !ok {
			view.Blocks = append(view.Blocks, blockView{
				ID:    instance.ID,
				Type:  instance.Type,
				Title: instance.Type,
				Body:  template.HTML("<p class=\"block-unknown\">unknown block type</p>"),
			})
			continue
		}

		prefix := view.Name + "." + instance.ID
		body, err := r.renderFields(bt.Fields, instance.Data, prefix, depth+1)
		if err != nil {
			return "", err
		}

		title := bt.DisplayName
		if title == "" {
			title = bt.Name
		}
		view.Blocks = append(view.Blocks, blockView{
			ID:    instance.ID,
			Type:  bt.Name,
			Title: title,
			Body:  body,
		})
	}

	for _, bt := range r.allowedBlockTypes(f) {
		label := bt.DisplayName
		if label == "" {
			label = bt.Name
		}
		view.Choices = append(view.Choices, blockChoice{Type: bt.Name, Label: label})
	}

	return r.execute("blocks", view)
}

// allowedBlockTypes resolves the add-menu choices: the field's allow-list when
// present, otherwise every registered, non-deprecated block type.
func (r *Renderer) allowedBlockTypes(f schema.Field) []registry.BlockType {
	if len(f.AllowedBlocks) > 0 {
		out := make([]registry.BlockType, 0, len(f.AllowedBlocks))
		for _, name := range f.AllowedBlocks {
			if bt, ok := r.registry.BlockType(name); ok && !bt.Settings.Deprecated {
				out = append(out, bt)
			}
		}
		return out
	}

	var out []registry.BlockType
	for _, bt := range r.registry.BlockTypes() {
		if !bt.Settings.Deprecated {
			out = append(out, bt)
		}
	}
	return out
}

func (r *Renderer) execute(name string, view fieldView) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, view); err != nil {
		return "", fmt.Errorf("rendering widget %q for field %q: %w", name, view.Field.Name, err)
	}
	return template.HTML(buf.String()), nil
}

// fieldView is the data every widget template receives.
type fieldView struct {
	Field     schema.Field
	Name      string
	Label     string
	InputType string
	Value     string
	Checked   bool
	Required  bool
	Disabled  bool
	Options   []optionView
	NodeTypes string
	Blocks    []blockView
	Choices   []blockChoice
}

type optionView struct {
	Value    string
	Label    string
	Selected bool
}

type blockView struct {
	ID    string
	Type  string
	Title string
	Body  template.HTML
}

type blockChoice struct {
	Type  string
	Label string
}

func fieldName(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func fieldLabel(f schema.Field) string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

func uiOrder(f schema.Field) int {
	if f.UI == nil {
		return 0
	}
	return f.UI.Order
}

// numberString formats a numeric value for an input's value attribute. JSON
// decoding delivers numbers as float64.
func numberString(value any) string {
	switch v := value.(type) {
	case float64:
		return fmt.Sprintf("%g", v)
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case string:
		return v
	default:
		return ""
	}
}

// jsonString serializes composite values (arrays, node references) into the
// widget's backing input.
func jsonString(value any) string {
	if value == nil {
		return ""
	}
	b, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return string(b)
}

const widgetTemplates = `
{{define "input"}}
<div class="field field-{{.Field.Type}}">
  <label for="{{.Name}}">{{.Label}}{{if .Required}} <span class="required">*</span>{{end}}</label>
  <input type="{{.InputType}}" id="{{.Name}}" name="{{.Name}}" value="{{.Value}}"{{if .Field.Placeholder}} placeholder="{{.Field.Placeholder}}"{{end}}{{if .Required}} required{{end}}{{if .Disabled}} disabled{{end}}>
  {{if .Field.Description}}<p class="field-description">{{.Field.Description}}</p>{{end}}
</div>
{{end}}

{{define "textarea"}}
<div class="field field-textarea">
  <label for="{{.Name}}">{{.Label}}{{if .Required}} <span class="required">*</span>{{end}}</label>
  <textarea id="{{.Name}}" name="{{.Name}}"{{if .Field.Placeholder}} placeholder="{{.Field.Placeholder}}"{{end}}{{if .Required}} required{{end}}{{if .Disabled}} disabled{{end}}>{{.Value}}</textarea>
  {{if .Field.Description}}<p class="field-description">{{.Field.Description}}</p>{{end}}
</div>
{{end}}

{{define "checkbox"}}
<div class="field field-boolean">
  <label><input type="checkbox" id="{{.Name}}" name="{{.Name}}"{{if .Checked}} checked{{end}}{{if .Disabled}} disabled{{end}}> {{.Label}}</label>
  {{if .Field.Description}}<p class="field-description">{{.Field.Description}}</p>{{end}}
</div>
{{end}}

{{define "select"}}
<div class="field field-select">
  <label for="{{.Name}}">{{.Label}}{{if .Required}} <span class="required">*</span>{{end}}</label>
  <select id="{{.Name}}" name="{{.Name}}"{{if .Required}} required{{end}}{{if .Disabled}} disabled{{end}}>
    {{if not .Required}}<option value=""></option>{{end}}
    {{range .Options}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
    {{end}}
  </select>
</div>
{{end}}

{{define "file"}}
<div class="field field-file">
  <label for="{{.Name}}">{{.Label}}{{if .Required}} <span class="required">*</span>{{end}}</label>
  {{if .Value}}<p class="field-current-file">{{.Value}}</p>{{end}}
  <input type="file" id="{{.Name}}" name="{{.Name}}" data-upload-url="/media"{{if .Field.Accept}} accept="{{.Field.Accept}}"{{end}}{{if .Field.Multiple}} multiple{{end}}{{if .Disabled}} disabled{{end}}>
</div>
{{end}}

{{define "node"}}
<div class="field field-node">
  <label for="{{.Name}}">{{.Label}}{{if .Required}} <span class="required">*</span>{{end}}</label>
  <input type="text" id="{{.Name}}" name="{{.Name}}" value="{{.Value}}" data-widget="node-lookup" data-node-types="{{.NodeTypes}}"{{if .Field.Multiple}} data-multiple="true"{{end}}{{if .Disabled}} disabled{{end}}>
</div>
{{end}}

{{define "array"}}
<div class="field field-array">
  <label for="{{.Name}}">{{.Label}}{{if .Required}} <span class="required">*</span>{{end}}</label>
  <textarea id="{{.Name}}" name="{{.Name}}" data-widget="array"{{if .Field.ItemType}} data-item-type="{{.Field.ItemType}}"{{end}}>{{.Value}}</textarea>
</div>
{{end}}

{{define "blocks"}}
<div class="field field-blocks" data-widget="blocks" data-name="{{.Name}}">
  <label>{{.Label}}</label>
  {{range .Blocks}}
  <fieldset class="block" data-block-id="{{.ID}}" data-block-type="{{.Type}}">
    <legend>{{.Title}}</legend>
    {{.Body}}
  </fieldset>
  {{end}}
  <div class="block-add">
    {{range .Choices}}<button type="button" data-add-block="{{.Type}}">{{.Label}}</button>
    {{end}}
  </div>
</div>
{{end}}

{{define "blocksTooDeep"}}
<div class="field field-blocks">
  <label>{{.Label}}</label>
  <p class="field-note">nesting limit reached</p>
</div>
{{end}}

{{define "unsupported"}}
<div class="field field-unsupported">
  <label>{{.Label}}</label>
  <p class="field-note">unsupported field type {{.Field.Type}}</p>
</div>
{{end}}
`
