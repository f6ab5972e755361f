package openapi

import (
	"fmt"
	"sort"
	"strings"

	"github.com/skillsenselab/restkit/rest"
)

const specVersion = "3.0.3"

// Build derives a Document from static config and the resource definitions
// of a namespace. The definitions are the same ones the dispatch layer
// mounts, so the descriptor always matches the routes actually served.
func Build(cfg Config, defs []rest.Definition) (*Document, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	doc := &Document{
		OpenAPI: specVersion,
		Info: Info{
			Title:       cfg.Title,
			Version:     cfg.Version,
			Description: cfg.Description,
		},
		Paths: make(map[string]PathItem),
	}

	if cfg.ContactName != "" || cfg.ContactURL != "" {
		doc.Info.Contact = &Contact{Name: cfg.ContactName, URL: cfg.ContactURL}
	}
	if cfg.LicenseName != "" || cfg.LicenseURL != "" {
		doc.Info.License = &License{Name: cfg.LicenseName, URL: cfg.LicenseURL}
	}
	for _, s := range cfg.Servers {
		doc.Servers = append(doc.Servers, Server(s))
	}

	for _, def := range defs {
		doc.Tags = append(doc.Tags, Tag{Name: def.Name})
		for _, op := range def.Operations {
			path := documentPath(def.Path, op.Path)
			item, ok := doc.Paths[path]
			if !ok {
				item = make(PathItem)
				doc.Paths[path] = item
			}

			method := strings.ToLower(op.Method)
			if _, exists := item[method]; exists {
				return nil, fmt.Errorf("openapi: resource %q redeclares operation %s %s",
					def.Name, strings.ToUpper(op.Method), path)
			}

			tags := op.Tags
			if len(tags) == 0 {
				tags = []string{def.Name}
			}
			item[method] = OperationObject{
				Summary:     op.Summary,
				OperationID: op.OperationID,
				Tags:        tags,
				Responses: map[string]Response{
					"200": {Description: "Successful operation"},
				},
			}
		}
	}

	sort.Slice(doc.Tags, func(i, j int) bool { return doc.Tags[i].Name < doc.Tags[j].Name })

	return doc, nil
}

// OperationCount returns the number of operations in the document.
func (d *Document) OperationCount() int {
	n := 0
	for _, item := range d.Paths {
		n += len(item)
	}
	return n
}

// documentPath joins the resource path and operation path and rewrites gin
// parameter syntax (":id", "*rest") into the descriptor's "{id}" form.
func documentPath(resourcePath, opPath string) string {
	p := strings.TrimSuffix(resourcePath, "/") + opPath
	if p == "" {
		p = "/"
	}
	p = strings.TrimSuffix(p, "/")
	if p == "" {
		p = "/"
	}

	segments := strings.Split(p, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") || strings.HasPrefix(seg, "*") {
			segments[i] = "{" + seg[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}
