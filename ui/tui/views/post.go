package views

import (
	"fmt"
	"hash/fnv"
	"strings"

	"allstars/internal/feed"
	"allstars/internal/interaction"
	"allstars/ui/tui/state"
	"allstars/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// IconProps carries the action-icon state for one post.
type IconProps struct {
	Active map[interaction.IconType]bool
	Scales map[interaction.IconType]float64
}

// PostView renders one post filling the viewport: background image
// block for the current page, bottom gradient, page content, action
// icons (normal pages only) and the page indicator.
type PostView struct {
	Post      feed.Post
	Page      feed.Page
	PageIndex int
	ScrollX   float64
	Loaded    bool
	Content   ContentProps
	Icons     IconProps
}

// MenuZoneID is the mouse zone of the slide-menu button.
const MenuZoneID = "menu_btn"

// IconZoneID names the mouse zone of one action icon.
func IconZoneID(postID string, icon interaction.IconType) string {
	return fmt.Sprintf("icon_%s_%s", postID, icon)
}

var iconGlyphs = map[interaction.IconType]string{
	interaction.IconHeart:    "♥",
	interaction.IconComment:  "✉",
	interaction.IconSend:     "➤",
	interaction.IconBookmark: "⚑",
}

func (v PostView) Render(s state.AppState, props ViewProps) string {
	header := lipgloss.PlaceHorizontal(props.Width, lipgloss.Right,
		zone.Mark(MenuZoneID, styles.Subtle.Render("☰ menu [m] ")))

	if !v.Loaded {
		loader := PostLoaderView{}.Render(s, ViewProps{
			Width:       props.Width,
			Height:      props.Height - 1,
			SpinnerView: props.SpinnerView,
		})
		return lipgloss.JoinVertical(lipgloss.Left, header, loader)
	}

	contentWidth := props.Width - 2
	if v.Page.Type == feed.PageNormal {
		// Leave room for the icon rail.
		contentWidth = props.Width - 10
	}
	cp := v.Content
	cp.Width = contentWidth

	var contentRows []string
	if v.Page.Type == feed.PageNormal {
		contentRows = append(contentRows,
			zone.Mark("category_"+v.Post.ID, styles.CategoryChip.Render(v.Post.Category)),
			styles.Headline.Width(contentWidth).Render(v.Post.Headline),
		)
	}
	contentRows = append(contentRows, RenderPageContent(v.Page, v.Post.ID, cp))
	content := lipgloss.JoinVertical(lipgloss.Left, contentRows...)

	if v.Page.Type == feed.PageNormal {
		content = lipgloss.JoinHorizontal(lipgloss.Bottom,
			lipgloss.NewStyle().Width(contentWidth).Render(content),
			v.renderIconRail(),
		)
	}

	footer := lipgloss.JoinHorizontal(lipgloss.Center,
		RenderIndicator(v.PageIndex, len(v.Post.Pages), v.ScrollX, pageWidth(props.Width)),
		"  ",
		styles.Hint.Render("←/→ pages • ↑/↓ posts"),
	)

	gradient := renderGradient(props.Width, v.Content.Expanded)

	bottom := lipgloss.JoinVertical(lipgloss.Left, gradient, content, footer)
	imageHeight := props.Height - 1 - lipgloss.Height(bottom)
	image := renderImageBlock(props.Width, imageHeight, v.Page.Image)

	return lipgloss.JoinVertical(lipgloss.Left, header, image, bottom)
}

func (v PostView) renderIconRail() string {
	order := []interaction.IconType{
		interaction.IconHeart,
		interaction.IconComment,
		interaction.IconSend,
		interaction.IconBookmark,
	}

	var rows []string
	for i, icon := range order {
		style := lipgloss.NewStyle().Foreground(styles.Dim)
		if v.Icons.Active[icon] {
			style = lipgloss.NewStyle().Foreground(styles.GoldBright).Bold(true)
		}

		cell := fmt.Sprintf(" %s %d ", iconGlyphs[icon], i+1)
		if scale, ok := v.Icons.Scales[icon]; ok && scale < 0.97 {
			cell = strings.TrimSpace(cell)
		}
		rows = append(rows, zone.Mark(IconZoneID(v.Post.ID, icon), style.Render(cell)))
		if i < len(order)-1 {
			rows = append(rows, "")
		}
	}

	return lipgloss.NewStyle().Width(8).Align(lipgloss.Center).Render(
		lipgloss.JoinVertical(lipgloss.Center, rows...))
}

// pageWidth is the horizontal pagination unit; one page spans the
// whole viewport width.
func pageWidth(viewportWidth int) int {
	if viewportWidth <= 0 {
		return 1
	}
	return viewportWidth
}

// renderGradient draws the darkening band that sits between the image
// and the content; it grows when the description is expanded.
func renderGradient(width int, expanded bool) string {
	ramp := []string{"░", "▒"}
	if expanded {
		ramp = []string{"░", "░", "▒"}
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color("#101010"))
	rows := make([]string, len(ramp))
	for i, ch := range ramp {
		rows[i] = style.Render(strings.Repeat(ch, max(width, 1)))
	}
	return strings.Join(rows, "\n")
}

// imagePalette approximates per-image tinting; the block color is
// derived from the URI so each page reads distinct.
var imagePalette = []lipgloss.Color{
	"#1A1625", "#201323", "#16213E", "#1B2A20", "#2A1B1B", "#1F2430",
}

func renderImageBlock(width, height int, uri string) string {
	if height < 1 {
		return ""
	}

	h := fnv.New32a()
	h.Write([]byte(uri))
	color := imagePalette[int(h.Sum32())%len(imagePalette)]

	style := lipgloss.NewStyle().Foreground(color)
	caption := styles.Hint.Render(" ⛶ " + uri + " ")

	rows := make([]string, height)
	for i := range rows {
		rows[i] = style.Render(strings.Repeat("▚", max(width, 1)))
	}
	if height > 1 {
		rows[0] = caption
	}
	return strings.Join(rows, "\n")
}
