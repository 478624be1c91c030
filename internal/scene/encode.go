package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

var (
	colorCyan = lipgloss.Color("36")
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")

	styleName  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleFrame = lipgloss.NewStyle().Foreground(colorGray)
	styleTree  = lipgloss.NewStyle().Foreground(colorDim)
	styleEmpty = lipgloss.NewStyle().Faint(true).Foreground(colorDim)
)

// cborEnc uses Core Deterministic Encoding so equal snapshots produce
// identical bytes.
var cborEnc = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("scene: CBOR encoder initialization failed: " + err.Error())
	}
	return em
}()

// ParseFormat parses an output format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML, FormatTOML, FormatCBOR:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Encode writes s to w in the given format.
func Encode(w io.Writer, s Snapshot, format Format) error {
	switch format {
	case FormatText:
		_, err := io.WriteString(w, RenderText(s))
		return err

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()

	case FormatTOML:
		return toml.NewEncoder(w).Encode(s)

	case FormatCBOR:
		data, err := cborEnc.Marshal(s)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err

	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// DecodeCBOR reads a snapshot written by Encode with FormatCBOR.
func DecodeCBOR(data []byte) (Snapshot, error) {
	var s Snapshot
	err := cbor.Unmarshal(data, &s)
	return s, err
}

// RenderText draws the snapshot as an indented tree, one node per line.
// Nodes with zero area are dimmed and marked empty:
//
//	root  0,0 123x456
//	├─ box  11.5,178 100x100
//	└─ spacer  0,0 0x0 (empty)
func RenderText(s Snapshot) string {
	var sb strings.Builder
	renderNode(&sb, s, "", "")
	return sb.String()
}

func renderNode(sb *strings.Builder, s Snapshot, branch, indent string) {
	sb.WriteString(styleTree.Render(branch))
	sb.WriteString(styleName.Render(s.Name))
	sb.WriteString("  ")
	frame := fmt.Sprintf("%s,%s %sx%s", num(s.X), num(s.Y), num(s.Width), num(s.Height))
	if s.Frame().IsEmpty() {
		sb.WriteString(styleEmpty.Render(frame + " (empty)"))
	} else {
		sb.WriteString(styleFrame.Render(frame))
	}
	sb.WriteByte('\n')

	for i, c := range s.Children {
		if i == len(s.Children)-1 {
			renderNode(sb, c, indent+"└─ ", indent+"   ")
		} else {
			renderNode(sb, c, indent+"├─ ", indent+"│  ")
		}
	}
}

func num(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
