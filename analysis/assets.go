package analysis

import (
	"fmt"

	"github.com/limenime/limeass/ast"
	"github.com/limenime/limeass/uuenc"
)

// DecodedAsset is one [Fonts] or [Graphics] entry with its UU-encoded
// payload decoded to raw bytes.
type DecodedAsset struct {
	Name string
	Data []byte
	Err  error
}

// DecodeEmbeddedAssets decodes every [Fonts] and [Graphics] entry in
// script. A per-entry decode failure is recorded on that entry's Err
// rather than aborting the whole pass (spec §6.2's UU codec is tolerant
// of a short final group; anything else is a producer error worth
// surfacing per-entry, not fatal to the rest of the script).
func DecodeEmbeddedAssets(script *ast.Script) []DecodedAsset {
	var out []DecodedAsset
	for _, sec := range script.Sections {
		switch {
		case sec.Kind.Kind == ast.SectionFonts && sec.Fonts != nil:
			for _, f := range sec.Fonts.Entries {
				data, err := uuenc.DecodeSpans(script.Source, f.Lines)
				out = append(out, DecodedAsset{Name: f.Name.Text(script.Source), Data: data, Err: wrapDecodeErr(err, f.Name.Text(script.Source))})
			}
		case sec.Kind.Kind == ast.SectionGraphics && sec.Graphics != nil:
			for _, g := range sec.Graphics.Entries {
				data, err := uuenc.DecodeSpans(script.Source, g.Lines)
				out = append(out, DecodedAsset{Name: g.Name.Text(script.Source), Data: data, Err: wrapDecodeErr(err, g.Name.Text(script.Source))})
			}
		}
	}
	return out
}

func wrapDecodeErr(err error, name string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("decode embedded asset %q: %w", name, err)
}
