package api

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/mvaleri/atrium/internal/relate"
	module "github.com/mvaleri/atrium/internal/services/site/module"
)

// Ecosystem diagram layout. Skills form the left column, entries the right,
// with an edge for every tag relationship the index knows about.
const (
	diagramPadding = 32
	headerHeight   = 48
	skillW         = 170
	skillH         = 30
	itemW          = 210
	itemH          = 38
	rowGap         = 14
	columnGap      = 140
	minDiagramW    = 560
	minDiagramH    = 320
)

var (
	colorParchment = color.RGBA{0xf6, 0xf1, 0xe7, 0xff}
	colorInk       = color.RGBA{0x3b, 0x30, 0x24, 0xff}
	colorSubtle    = color.RGBA{0x8a, 0x7b, 0x62, 0xff}
	colorSkillBG   = color.RGBA{0xe7, 0xdc, 0xc8, 0xff}
	colorItemBG    = color.RGBA{0xff, 0xfc, 0xf5, 0xff}
	colorEdge      = color.RGBA{0xc3, 0xb4, 0x97, 0xff}
	colorAccent    = color.RGBA{0xb2, 0x3a, 0x2e, 0xff}
	colorMuted     = color.RGBA{0xd8, 0xd0, 0xc0, 0xff}
)

type diagramNode struct {
	id    string
	label string
	count int
	x, y  int
}

// renderEcosystemSVG draws the bipartite skill map for one snapshot. A
// non-empty filter highlights that skill, its edges, and the entries it
// keeps visible; everything else fades to the muted palette.
func renderEcosystemSVG(w io.Writer, snap module.Snapshot, filter relate.Tag) {
	ctrl := relate.NewController(snap.Index, relate.WithFilter(filter))
	_, filtered := ctrl.CurrentFilter()

	controls := snap.Index.Controls()
	items := snap.Index.Items()
	titleByID := entryTitles(snap)

	skillNodes := make([]diagramNode, 0, len(controls))
	for i, control := range controls {
		skillNodes = append(skillNodes, diagramNode{
			id:    string(control.Tag),
			label: truncate(skillLabel(snap, control.ID, string(control.Tag)), 20),
			count: control.RelatedCount,
			x:     diagramPadding,
			y:     diagramPadding + headerHeight + i*(skillH+rowGap),
		})
	}
	itemNodes := make([]diagramNode, 0, len(items))
	for i, id := range items {
		itemNodes = append(itemNodes, diagramNode{
			id:    id,
			label: truncate(titleByID[id], 26),
			x:     diagramPadding + skillW + columnGap,
			y:     diagramPadding + headerHeight + i*(itemH+rowGap),
		})
	}

	width := diagramPadding*2 + skillW + columnGap + itemW
	if width < minDiagramW {
		width = minDiagramW
	}
	height := diagramPadding*2 + headerHeight + tallestColumn(len(skillNodes), len(itemNodes))
	if height < minDiagramH {
		height = minDiagramH
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, fmt.Sprintf("fill:%s", css(colorParchment)))
	canvas.Text(diagramPadding, diagramPadding+16, diagramTitle(snap),
		fmt.Sprintf("fill:%s;font-size:18px;font-family:Georgia,serif;font-weight:bold", css(colorInk)))

	skillY := make(map[string]int, len(skillNodes))
	for _, node := range skillNodes {
		skillY[node.id] = node.y
	}
	itemY := make(map[string]int, len(itemNodes))
	for _, node := range itemNodes {
		itemY[node.id] = node.y
	}

	for _, id := range items {
		for _, tag := range snap.Index.TagsOf(id) {
			sy, ok := skillY[string(tag)]
			if !ok {
				continue
			}
			edgeColor := colorEdge
			edgeWidth := 1
			if filtered {
				if tag == filter {
					edgeColor = colorAccent
					edgeWidth = 2
				} else {
					edgeColor = colorMuted
				}
			}
			canvas.Line(
				diagramPadding+skillW, sy+skillH/2,
				diagramPadding+skillW+columnGap, itemY[id]+itemH/2,
				fmt.Sprintf("stroke:%s;stroke-width:%d", css(edgeColor), edgeWidth),
			)
		}
	}

	for _, node := range skillNodes {
		fill := colorSkillBG
		stroke := colorInk
		if filtered {
			if relate.Tag(node.id) == filter {
				fill = colorAccent
			} else {
				stroke = colorSubtle
			}
		}
		canvas.Roundrect(node.x, node.y, skillW, skillH, 6, 6,
			fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", css(fill), css(stroke)))
		textColor := colorInk
		if filtered && relate.Tag(node.id) == filter {
			textColor = colorParchment
		}
		canvas.Text(node.x+10, node.y+20, fmt.Sprintf("%s (%d)", node.label, node.count),
			fmt.Sprintf("fill:%s;font-size:12px;font-family:Georgia,serif", css(textColor)))
	}

	for _, node := range itemNodes {
		stroke := colorInk
		text := colorInk
		if filtered && !ctrl.IsVisible(node.id) {
			stroke = colorMuted
			text = colorSubtle
		}
		canvas.Roundrect(node.x, node.y, itemW, itemH, 6, 6,
			fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", css(colorItemBG), css(stroke)))
		canvas.Text(node.x+10, node.y+16, node.label,
			fmt.Sprintf("fill:%s;font-size:12px;font-family:Georgia,serif", css(text)))
		canvas.Text(node.x+10, node.y+30, node.id,
			fmt.Sprintf("fill:%s;font-size:10px;font-family:monospace", css(colorSubtle)))
	}

	canvas.End()
}

func entryTitles(snap module.Snapshot) map[string]string {
	out := map[string]string{}
	for _, entry := range snap.Document.Entries() {
		out[entry.ID] = entry.Title
	}
	return out
}

func skillLabel(snap module.Snapshot, controlID string, fallback string) string {
	for _, skill := range snap.Document.Skills {
		if skill.ControlID() == controlID {
			if label := skill.DisplayLabel(); label != "" {
				return label
			}
			break
		}
	}
	return fallback
}

func diagramTitle(snap module.Snapshot) string {
	if name := snap.Document.Name; name != "" {
		return name + ": skill ecosystem"
	}
	return "Skill ecosystem"
}

func tallestColumn(skills, items int) int {
	skillCol := skills * (skillH + rowGap)
	itemCol := items * (itemH + rowGap)
	if skillCol > itemCol {
		return skillCol
	}
	return itemCol
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

func css(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
