package render

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/johnfercher/maroto/v2"
	mcfg "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/billcraft/billcraft/internal/config"
	"github.com/billcraft/billcraft/internal/invoice/document"
)

// pageMargin is one inch, in millimeters.
const pageMargin = 25.4

// RendererParams holds renderer dependencies.
type RendererParams struct {
	fx.In

	Cfg      config.Config
	Log      *zap.Logger
	Registry *Registry
}

// Renderer generates invoice PDFs on US Letter with one-inch margins.
type Renderer struct {
	cfg      config.Config
	log      *zap.Logger
	registry *Registry
}

// NewRenderer creates the PDF renderer.
func NewRenderer(p RendererParams) *Renderer {
	return &Renderer{
		cfg:      p.Cfg,
		log:      p.Log.Named("render"),
		registry: p.Registry,
	}
}

// Render produces the PDF bytes for a document using the named
// template. Unknown template names fall back to the default layout.
func (r *Renderer) Render(doc document.Document, templateName string) ([]byte, error) {
	tpl := r.registry.Get(templateName)
	if tpl.Name() != templateName {
		r.log.Debug("unknown template, using default", zap.String("requested", templateName))
	}

	// A configured logo that is missing, unreadable, or not a decodable
	// image degrades to the text header. This is the only silent
	// fallback in the render path.
	if doc.Header.LogoPath != "" && !logoUsable(doc.Header.LogoPath) {
		r.log.Debug("logo unusable, using text header", zap.String("path", doc.Header.LogoPath))
		doc.Header.LogoPath = ""
	}

	cfg := mcfg.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(pageMargin).
		WithTopMargin(pageMargin).
		WithRightMargin(pageMargin).
		Build()

	m := maroto.New(cfg)
	m.AddRows(tpl.Layout(doc)...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return out.GetBytes(), nil
}

// RenderToFile renders the document and writes the PDF atomically:
// the target path either keeps its previous content or holds the
// complete new file, never a partial one.
func (r *Renderer) RenderToFile(doc document.Document, templateName, path string) error {
	data, err := r.Render(doc, templateName)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write pdf: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close pdf: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("finalize pdf: %w", err)
	}

	r.log.Info("invoice pdf written",
		zap.String("path", path),
		zap.String("template", r.registry.Get(templateName).Name()),
	)
	return nil
}

// logoUsable reports whether path holds an image the PDF engine can
// embed. Failing it here keeps a broken logo from aborting generation.
func logoUsable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	_, _, err = image.DecodeConfig(f)
	return err == nil
}

var unsafeFilenameRe = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// Filename builds the suggested export name:
// Invoice_<number>_<client>_<yyyymmdd>.pdf with unsafe characters
// replaced by underscores.
func Filename(invoiceNumber, clientName string, invoiceDate time.Time) string {
	number := unsafeFilenameRe.ReplaceAllString(invoiceNumber, "_")
	client := unsafeFilenameRe.ReplaceAllString(strings.TrimSpace(clientName), "_")
	return fmt.Sprintf("Invoice_%s_%s_%s.pdf", number, client, invoiceDate.Format("20060102"))
}

var Module = fx.Module("render",
	fx.Provide(NewRegistry),
	fx.Provide(NewRenderer),
)
