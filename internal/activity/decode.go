package activity

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a payload does not describe a valid activity.
var ErrInvalid = errors.New("invalid activity")

// Format is the encoding of an activity payload.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks a Format from a file name or URL path.
// Anything that is not .yaml/.yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://conceptsort/activity.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func activitySchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			compileErr = fmt.Errorf("parse activity schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add activity schema: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// wireDoc accepts both the nested topic-file layout and the flat layout.
type wireDoc struct {
	Actividad *wireActividad `json:"actividad" yaml:"actividad"`

	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Groups      Groups `json:"groups" yaml:"groups"`
}

type wireActividad struct {
	Titulo      string `json:"titulo" yaml:"titulo"`
	Descripcion string `json:"descripcion" yaml:"descripcion"`
	Grupos      struct {
		GrupoA wireGrupo `json:"grupoA" yaml:"grupoA"`
		GrupoB wireGrupo `json:"grupoB" yaml:"grupoB"`
	} `json:"grupos" yaml:"grupos"`
}

type wireGrupo struct {
	Nombre             string   `json:"nombre" yaml:"nombre"`
	ConceptosCorrectos []string `json:"conceptos_correctos" yaml:"conceptos_correctos"`
}

func (d wireDoc) activity() Activity {
	if a := d.Actividad; a != nil {
		return Activity{
			Title:       a.Titulo,
			Description: a.Descripcion,
			Groups: Groups{
				GroupA: Group{Name: a.Grupos.GrupoA.Nombre, CorrectConcepts: a.Grupos.GrupoA.ConceptosCorrectos},
				GroupB: Group{Name: a.Grupos.GrupoB.Nombre, CorrectConcepts: a.Grupos.GrupoB.ConceptosCorrectos},
			},
		}
	}
	return Activity{Title: d.Title, Description: d.Description, Groups: d.Groups}
}

// Decode parses and validates an activity payload.
func Decode(data []byte, format Format) (Activity, error) {
	var (
		generic any
		doc     wireDoc
	)

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return Activity{}, fmt.Errorf("%w: parse yaml: %v", ErrInvalid, err)
		}
		if err := validate(generic); err != nil {
			return Activity{}, err
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Activity{}, fmt.Errorf("%w: decode yaml: %v", ErrInvalid, err)
		}
	default:
		v, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			return Activity{}, fmt.Errorf("%w: parse json: %v", ErrInvalid, err)
		}
		if err := validate(v); err != nil {
			return Activity{}, err
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return Activity{}, fmt.Errorf("%w: decode json: %v", ErrInvalid, err)
		}
	}

	return doc.activity().Normalize(), nil
}

func validate(v any) error {
	sch, err := activitySchema()
	if err != nil {
		return err
	}
	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Encode renders a as the flat JSON layout.
func Encode(a Activity) ([]byte, error) {
	return json.MarshalIndent(a, "", "  ")
}

// EncodeFormat renders a in the given format.
func EncodeFormat(a Activity, f Format) ([]byte, error) {
	if f == FormatYAML {
		return yaml.Marshal(a)
	}
	return Encode(a)
}
