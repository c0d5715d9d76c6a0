package figure

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Save writes p to path. The format follows the extension: png, jpg,
// jpeg and tif/tiff are rasterised at st.DPI; eps, pdf and svg are vector
// outputs. The file is written to a temporary sibling and renamed, so a
// failed render never leaves a partial image behind.
func Save(p *plot.Plot, path string, st Style) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	var writerTo io.WriterTo
	switch ext {
	case "png", "jpg", "jpeg", "tif", "tiff":
		c := vgimg.NewWith(vgimg.UseWH(st.Width, st.Height), vgimg.UseDPI(int(st.DPI)))
		p.Draw(draw.New(c))
		switch ext {
		case "png":
			writerTo = vgimg.PngCanvas{Canvas: c}
		case "tif", "tiff":
			writerTo = vgimg.TiffCanvas{Canvas: c}
		default:
			writerTo = vgimg.JpegCanvas{Canvas: c}
		}
	case "eps", "pdf", "svg":
		wt, err := p.WriterTo(st.Width, st.Height, ext)
		if err != nil {
			return fmt.Errorf("figure: %w", err)
		}
		writerTo = wt
	default:
		return fmt.Errorf("figure: unsupported output format %q", ext)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("figure: create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".specseq-*."+ext)
	if err != nil {
		return fmt.Errorf("figure: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := writerTo.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("figure: write %s: %w", ext, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("figure: close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("figure: rename output: %w", err)
	}
	return nil
}
