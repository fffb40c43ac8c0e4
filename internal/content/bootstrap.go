// Package content declares the built-in node and block types registered at
// startup. Registration order matters: the path resolver walks node types in
// the order they appear here.
package content

import (
	"fmt"

	"github.com/fieldpress/fieldpress/internal/registry"
	"github.com/fieldpress/fieldpress/internal/schema"
)

func intPtr(i int) *int { return &i }

// RegisterAll registers every built-in type into reg. It is called once from
// the composition root before the HTTP listener binds; any error here is a
// programming mistake and aborts startup.
func RegisterAll(reg *registry.Registry) error {
	for _, bt := range blockTypes() {
		if err := reg.RegisterBlockType(bt); err != nil {
			return fmt.Errorf("registering block type %q: %w", bt.Name, err)
		}
	}
	for _, nt := range nodeTypes() {
		if err := reg.RegisterNodeType(nt); err != nil {
			return fmt.Errorf("registering node type %q: %w", nt.Name, err)
		}
	}
	return nil
}

func nodeTypes() []registry.NodeType {
	return []registry.NodeType{
		{
			Name: "page",
			Settings: registry.NodeSettings{
				DisplayName: "Page",
				Icon:        "file",
				Description: "Free-form page served at the site root.",
				TitleField:  "title",
			},
			Fields: []schema.Field{
				{
					Name:       "title",
					Type:       schema.TypeText,
					Label:      "Title",
					Validation: &schema.Validation{Required: true, MaxLength: intPtr(200)},
				},
				{
					Name:       "slug",
					Type:       schema.TypeSlug,
					Label:      "Slug",
					Validation: &schema.Validation{Required: true, MaxLength: intPtr(200)},
					Save:       NormalizeSlug,
				},
				{
					Name:  "body",
					Type:  schema.TypeBlocks,
					Label: "Body",
				},
			},
		},
		{
			Name: "article",
			Settings: registry.NodeSettings{
				DisplayName: "Article",
				Icon:        "newspaper",
				Description: "Dated editorial content served under /blog.",
				Subpath:     "blog",
				TitleField:  "title",
			},
			Fields: []schema.Field{
				{
					Name:       "title",
					Type:       schema.TypeText,
					Label:      "Title",
					Validation: &schema.Validation{Required: true, MaxLength: intPtr(200)},
				},
				{
					Name:       "slug",
					Type:       schema.TypeSlug,
					Label:      "Slug",
					Validation: &schema.Validation{Required: true, MaxLength: intPtr(200)},
					Save:       NormalizeSlug,
				},
				{
					Name:  "publishedAt",
					Type:  schema.TypeDate,
					Label: "Published",
				},
				{
					Name:   "coverImage",
					Type:   schema.TypeFile,
					Label:  "Cover image",
					Accept: "image/*",
				},
				{
					Name:     "tags",
					Type:     schema.TypeArray,
					Label:    "Tags",
					ItemType: schema.TypeText,
					MaxItems: intPtr(10),
				},
				{
					Name:  "body",
					Type:  schema.TypeBlocks,
					Label: "Body",
				},
				{
					Name:        "excerpt",
					Type:        schema.TypeTextarea,
					Label:       "Excerpt",
					Description: "Derived from the first rich-text block when left empty.",
					Load:        ExcerptFromBody,
					UI:          &schema.UI{Disabled: true},
				},
			},
		},
	}
}

func blockTypes() []registry.BlockType {
	return []registry.BlockType{
		{
			Name:        "hero",
			DisplayName: "Hero",
			Description: "Full-width banner with heading and background image.",
			Icon:        "image",
			Category:    "layout",
			Fields: []schema.Field{
				{
					Name:       "heading",
					Type:       schema.TypeText,
					Label:      "Heading",
					Validation: &schema.Validation{Required: true, MaxLength: intPtr(120)},
				},
				{Name: "subheading", Type: schema.TypeText, Label: "Subheading"},
				{Name: "background", Type: schema.TypeFile, Label: "Background", Accept: "image/*"},
			},
			Settings: registry.BlockSettings{MaxInstances: 1},
		},
		{
			Name:        "rich-text",
			DisplayName: "Rich Text",
			Description: "Formatted prose.",
			Icon:        "align-left",
			Category:    "content",
			Fields: []schema.Field{
				{
					Name:       "content",
					Type:       schema.TypeTextarea,
					Label:      "Content",
					Validation: &schema.Validation{Required: true},
				},
			},
			Settings: registry.BlockSettings{AllowMultiple: true},
		},
		{
			Name:        "image",
			DisplayName: "Image",
			Description: "Single image with caption.",
			Icon:        "camera",
			Category:    "content",
			Fields: []schema.Field{
				{
					Name:       "file",
					Type:       schema.TypeFile,
					Label:      "File",
					Accept:     "image/*",
					Validation: &schema.Validation{Required: true},
				},
				{Name: "caption", Type: schema.TypeText, Label: "Caption"},
				{Name: "alt", Type: schema.TypeText, Label: "Alt text"},
			},
			Settings: registry.BlockSettings{AllowMultiple: true},
		},
		{
			Name:        "cta",
			DisplayName: "Call to Action",
			Description: "Button linking to an internal or external target.",
			Icon:        "mouse-pointer",
			Category:    "marketing",
			Fields: []schema.Field{
				{
					Name:       "label",
					Type:       schema.TypeText,
					Label:      "Label",
					Validation: &schema.Validation{Required: true, MaxLength: intPtr(60)},
				},
				{
					Name:       "url",
					Type:       schema.TypeURL,
					Label:      "Target URL",
					Validation: &schema.Validation{Required: true},
				},
				{
					Name:  "style",
					Type:  schema.TypeSelect,
					Label: "Style",
					Options: []schema.Option{
						{Value: "primary", Label: "Primary"},
						{Value: "secondary", Label: "Secondary"},
					},
				},
			},
			Settings: registry.BlockSettings{AllowMultiple: true},
		},
		{
			Name:        "two-column",
			DisplayName: "Two Columns",
			Description: "Side-by-side layout holding further blocks.",
			Icon:        "columns",
			Category:    "layout",
			Fields: []schema.Field{
				{Name: "left", Type: schema.TypeBlocks, Label: "Left column"},
				{Name: "right", Type: schema.TypeBlocks, Label: "Right column"},
			},
			Settings: registry.BlockSettings{AllowMultiple: true},
		},
	}
}
