package site

import (
	"fmt"
	"math"

	"github.com/san-kum/stride/internal/dom"
)

const (
	navHeight  = 80.0
	pad        = 64.0
	gap        = 32.0
	lineHeight = 28.0
)

// Build lays the content out top to bottom for a viewport of w by h pixels:
// hero (one viewport, navbar pinned over it), products, athletes (one
// viewport), technology and footer. The loading overlay is appended last so
// it paints over the first viewport.
func Build(c Content, w, h float64) *dom.Document {
	root := dom.NewNode(Page, dom.KindPage, dom.Box{Width: w})
	y := 0.0
	for _, sec := range []*dom.Node{
		buildHero(c, w, h),
		buildProducts(c, w, h),
		buildAthletes(c, w, h),
		buildTechnology(c, w, h),
		buildFooter(c, w),
	} {
		shift(sec, y)
		root.Append(sec)
		y += sec.Box.Height
	}
	root.Box.Height = y
	root.Append(buildLoading(c, w, h))
	return dom.NewDocument(root)
}

// shift moves a subtree down by dy document pixels.
func shift(n *dom.Node, dy float64) {
	n.Walk(func(c *dom.Node) bool {
		c.Box.Y += dy
		return true
	})
}

func columns(w float64) int {
	switch {
	case w >= 1200:
		return 4
	case w >= 700:
		return 2
	}
	return 1
}

func text(id string, kind dom.Kind, s string, box dom.Box) *dom.Node {
	n := dom.NewNode(id, kind, box)
	n.Text = s
	return n
}

// textHeight estimates wrapped height for s at roughly charW pixels per rune.
func textHeight(s string, width, charW float64) float64 {
	perLine := math.Max(1, math.Floor(width/charW))
	lines := math.Ceil(float64(len([]rune(s))) / perLine)
	return math.Max(1, lines) * lineHeight
}

func buildLoading(c Content, w, h float64) *dom.Node {
	ov := dom.NewNode(Loading, dom.KindOverlay, dom.Box{Width: w, Height: h})
	cx := w / 2
	ov.Append(
		text(LoadingLogo, dom.KindHeading, c.Loading.Title, dom.Box{X: cx - 120, Y: h/2 - 80, Width: 240, Height: 80}),
		text(LoadingTagline, dom.KindText, c.Loading.Tagline, dom.Box{X: cx - 120, Y: h/2 + 8, Width: 240, Height: lineHeight}),
	)
	track := dom.NewNode(LoadingTrack, dom.KindGroup, dom.Box{X: cx - 128, Y: h/2 + 56, Width: 256, Height: 4})
	track.Append(dom.NewNode(LoadingProgress, dom.KindBar, track.Box))
	ov.Append(track)
	return ov
}

func buildNav(c Content, w float64) *dom.Node {
	nav := dom.NewNode(Nav, dom.KindGroup, dom.Box{Width: w, Height: navHeight})
	nav.Append(text(NavLogo, dom.KindHeading, c.Brand, dom.Box{X: pad, Y: 24, Width: 96, Height: 32}))

	links := dom.NewNode(NavLinks, dom.KindGroup, dom.Box{X: w/2 - 240, Y: 24, Width: 480, Height: 32})
	slot := links.Box.Width / float64(max(1, len(c.Nav.Links)))
	for i, l := range c.Nav.Links {
		n := text(NavLink(i), dom.KindLink, l.Label, dom.Box{X: links.Box.X + float64(i)*slot, Y: 24, Width: slot - 8, Height: 32})
		n.Href = "#" + l.Target
		links.Append(n)
	}
	nav.Append(links)

	lang := dom.NewNode(NavLang, dom.KindGroup, dom.Box{X: w - pad - 96, Y: 24, Width: 96, Height: 32})
	for i, code := range c.Nav.Languages {
		lang.Append(text(NavLanguage(i), dom.KindButton, code, dom.Box{X: lang.Box.X + float64(i)*52, Y: 24, Width: 40, Height: 32}))
	}
	nav.Append(lang)
	return nav
}

func buildHero(c Content, w, h float64) *dom.Node {
	hero := dom.NewNode(SectionHero, dom.KindSection, dom.Box{Width: w, Height: h})
	video := dom.NewNode(HeroVideo, dom.KindMedia, hero.Box)
	video.Src = c.Hero.Video
	hero.Append(video, dom.NewNode(HeroOverlay, dom.KindOverlay, hero.Box))

	spots := [][2]float64{{w - 80, 80}, {w / 4, h / 3}, {2 * w / 3, 2 * h / 3}, {w / 6, 2 * h / 3}}
	for i := 0; i < c.Hero.Particles; i++ {
		s := spots[i%len(spots)]
		size := 4.0 + float64(i%3)*2
		hero.Append(dom.NewNode(HeroParticle(i), dom.KindParticle, dom.Box{X: s[0], Y: s[1], Width: size, Height: size}))
	}

	cw := math.Min(w-2*pad, 1100)
	titleY := h * 0.3
	hero.Append(text(HeroTitle, dom.KindHeading, c.Hero.Title, dom.Box{X: pad, Y: titleY, Width: cw, Height: 128}))
	subH := textHeight(c.Hero.Subtitle, math.Min(cw, 760), 11)
	hero.Append(text(HeroSubtitle, dom.KindText, c.Hero.Subtitle, dom.Box{X: pad, Y: titleY + 160, Width: math.Min(cw, 760), Height: subH}))
	hero.Append(text(HeroCTA, dom.KindButton, c.Hero.CTA, dom.Box{X: pad, Y: titleY + 192 + subH, Width: 280, Height: 64}))
	hero.Append(text(HeroSide, dom.KindText, c.Hero.SideLabel, dom.Box{X: w - 48, Y: h/2 - 120, Width: 24, Height: 240}))

	hero.Append(buildNav(c, w))
	return hero
}

func buildProducts(c Content, w, h float64) *dom.Node {
	sec := dom.NewNode(SectionProducts, dom.KindSection, dom.Box{Width: w})
	cw := math.Min(w-2*pad, 1400)
	x0 := (w - cw) / 2
	y := 128.0
	sec.Append(text(ProductsTitle, dom.KindHeading, c.Products.Title, dom.Box{X: x0, Y: y, Width: cw, Height: 112}))
	y += 144
	descH := textHeight(c.Products.Description, math.Min(cw, 760), 11)
	sec.Append(text(ProductsDesc, dom.KindText, c.Products.Description, dom.Box{X: (w - math.Min(cw, 760)) / 2, Y: y, Width: math.Min(cw, 760), Height: descH}))
	y += descH + 96

	cols := columns(w)
	colW := (cw - float64(cols-1)*gap) / float64(cols)
	infoH := 0.0
	for _, p := range c.Products.Items {
		infoH = math.Max(infoH, productInfoHeight(p, colW-48))
	}
	cardH := colW + 32 + infoH
	for i, p := range c.Products.Items {
		row, col := i/cols, i%cols
		box := dom.Box{X: x0 + float64(col)*(colW+gap), Y: y + float64(row)*(cardH+gap), Width: colW, Height: cardH}
		card := dom.NewNode(ProductCard(i), dom.KindCard, box)
		img := dom.NewNode(ProductImage(i), dom.KindMedia, dom.Box{X: box.X, Y: box.Y, Width: colW, Height: colW})
		img.Src = p.Image
		card.Append(img, dom.NewNode(ProductOverlay(i), dom.KindOverlay, img.Box))

		info := dom.NewNode(ProductInfo(i), dom.KindGroup, dom.Box{X: box.X + 24, Y: box.Y + colW + 16, Width: colW - 48, Height: infoH})
		iy := info.Box.Y
		for j, line := range productLines(p) {
			lh := textHeight(line.s, info.Box.Width, 10)
			info.Append(text(fmt.Sprintf("%s-line-%d", ProductInfo(i), j), line.kind, line.s, dom.Box{X: info.Box.X, Y: iy, Width: info.Box.Width, Height: lh}))
			iy += lh
		}
		card.Append(info)
		sec.Append(card)
	}
	rows := (len(c.Products.Items) + cols - 1) / cols
	y += float64(rows)*(cardH+gap) + 96
	sec.Box.Height = math.Max(h, y)
	return sec
}

type line struct {
	kind dom.Kind
	s    string
}

func productLines(p Product) []line {
	return []line{{dom.KindText, p.Category}, {dom.KindHeading, p.Name}, {dom.KindText, p.Description}, {dom.KindText, p.Price}}
}

func productInfoHeight(p Product, width float64) float64 {
	h := 0.0
	for _, l := range productLines(p) {
		h += textHeight(l.s, width, 10)
	}
	return h
}

func buildAthletes(c Content, w, h float64) *dom.Node {
	sec := dom.NewNode(SectionAthletes, dom.KindSection, dom.Box{Width: w})
	half := math.Max(w/2, math.Min(w-2*pad, 560))
	content := dom.NewNode(AthletesContent, dom.KindGroup, dom.Box{X: pad, Y: pad, Width: half - pad})
	y := content.Box.Y + 32
	content.Append(text(AthletesTitle, dom.KindHeading, c.Athletes.Title, dom.Box{X: pad, Y: y, Width: content.Box.Width, Height: 112}))
	y += 144
	qh := textHeight(c.Athletes.Quote, content.Box.Width, 14) + lineHeight
	quote := text(AthletesQuote, dom.KindText, c.Athletes.Quote, dom.Box{X: pad, Y: y, Width: content.Box.Width, Height: qh})
	quote.Label = c.Athletes.Attribution
	content.Append(quote)
	y += qh + 48

	statW := (content.Box.Width - gap) / 2
	for i, s := range c.Athletes.Stats {
		box := dom.Box{X: pad + float64(i%2)*(statW+gap), Y: y + float64(i/2)*(96+gap), Width: statW, Height: 96}
		stat := dom.NewNode(AthleteStat(i), dom.KindGroup, box)
		stat.Label = s.Label
		stat.Append(
			text(AthleteStatNumber(i), dom.KindHeading, s.Number, dom.Box{X: box.X, Y: box.Y, Width: statW, Height: 56}),
			text(AthleteStat(i)+"-label", dom.KindText, s.Label, dom.Box{X: box.X, Y: box.Y + 64, Width: statW, Height: lineHeight}),
		)
		content.Append(stat)
	}
	y += float64((len(c.Athletes.Stats)+1)/2)*(96+gap) + 32
	content.Append(text(AthletesCTA, dom.KindButton, c.Athletes.CTA, dom.Box{X: pad, Y: y, Width: 260, Height: 56}))
	y += 56 + pad
	content.Box.Height = y - content.Box.Y

	sec.Box.Height = math.Max(h, y)
	video := dom.NewNode(AthletesVideo, dom.KindMedia, sec.Box)
	video.Src = c.Athletes.Video
	sec.Append(video, dom.NewNode(AthletesOverlay, dom.KindOverlay, sec.Box), content)
	return sec
}

func buildTechnology(c Content, w, h float64) *dom.Node {
	sec := dom.NewNode(SectionTechnology, dom.KindSection, dom.Box{Width: w})
	cw := math.Min(w-2*pad, 1400)
	x0 := (w - cw) / 2
	bg := dom.NewNode(TechBackground, dom.KindMedia, dom.Box{Width: w})
	sec.Append(bg)

	y := 128.0
	sec.Append(text(TechTitle, dom.KindHeading, c.Technology.Title, dom.Box{X: x0, Y: y, Width: cw, Height: 112}))
	y += 144
	dh := textHeight(c.Technology.Description, math.Min(cw, 760), 11)
	sec.Append(text(TechDesc, dom.KindText, c.Technology.Description, dom.Box{X: (w - math.Min(cw, 760)) / 2, Y: y, Width: math.Min(cw, 760), Height: dh}))
	y += dh + 96

	cols := columns(w)
	colW := (cw - float64(cols-1)*gap) / float64(cols)
	descH := 0.0
	for _, t := range c.Technology.Items {
		descH = math.Max(descH, textHeight(t.Description, colW-64, 9))
	}
	cardH := 192 + descH
	for i, t := range c.Technology.Items {
		row, col := i/cols, i%cols
		box := dom.Box{X: x0 + float64(col)*(colW+gap), Y: y + float64(row)*(cardH+gap), Width: colW, Height: cardH}
		card := dom.NewNode(TechCard(i), dom.KindCard, box)
		floater := dom.NewNode(TechFloat(i), dom.KindGroup, box)
		body := dom.NewNode(TechContent(i), dom.KindGroup, dom.Box{X: box.X + 32, Y: box.Y + 112, Width: colW - 64, Height: cardH - 144})
		dh := textHeight(t.Description, body.Box.Width, 9)
		body.Append(
			text(TechContent(i)+"-name", dom.KindHeading, t.Name, dom.Box{X: body.Box.X, Y: body.Box.Y, Width: body.Box.Width, Height: 40}),
			text(TechContent(i)+"-desc", dom.KindText, t.Description, dom.Box{X: body.Box.X, Y: body.Box.Y + 48, Width: body.Box.Width, Height: dh}),
		)
		floater.Append(
			dom.NewNode(TechCardBackground(i), dom.KindOverlay, box),
			text(TechIcon(i), dom.KindText, t.Icon, dom.Box{X: box.X + 32, Y: box.Y + 32, Width: 48, Height: 48}),
			body,
		)
		card.Append(floater)
		sec.Append(card)
	}
	rows := (len(c.Technology.Items) + cols - 1) / cols
	y += float64(rows)*(cardH+gap) + 64
	sec.Append(text(TechSide, dom.KindText, c.Technology.SideLabel, dom.Box{X: x0, Y: y, Width: cw, Height: lineHeight}))
	y += lineHeight + 96

	sec.Box.Height = math.Max(h, y)
	bg.Box.Height = sec.Box.Height
	return sec
}

func buildFooter(c Content, w float64) *dom.Node {
	sec := dom.NewNode(SectionFooter, dom.KindSection, dom.Box{Width: w})
	content := dom.NewNode(FooterContent, dom.KindGroup, dom.Box{X: pad, Y: 80, Width: w - 2*pad})
	cols := min(4, columns(w))
	colW := (content.Box.Width - float64(cols-1)*gap) / float64(cols)

	logo := dom.NewNode(FooterLogo, dom.KindGroup, dom.Box{X: pad, Y: 80, Width: colW, Height: 40})
	logo.Append(text(FooterLogo+"-brand", dom.KindHeading, c.Brand, dom.Box{X: pad, Y: 80, Width: colW, Height: 40}))
	th := textHeight(c.Footer.Tagline, colW, 9)
	logo.Append(text(FooterLogo+"-tagline", dom.KindText, c.Footer.Tagline, dom.Box{X: pad, Y: 128, Width: colW, Height: th}))
	logo.Box.Height = 48 + th
	content.Append(logo)

	bottom := logo.Box.Bottom()
	for i, g := range c.Footer.Groups {
		slot := i + 1
		x := pad + float64(slot%cols)*(colW+gap)
		top := 80 + float64(slot/cols)*(bottom-80+gap)
		group := dom.NewNode(FooterGroup(i), dom.KindGroup, dom.Box{X: x, Y: top, Width: colW})
		group.Append(text(FooterGroup(i)+"-title", dom.KindHeading, g.Title, dom.Box{X: x, Y: top, Width: colW, Height: 32}))
		ly := top + 48
		for j, l := range g.Links {
			n := text(fmt.Sprintf("%s-%d", FooterGroup(i), j), dom.KindLink, l, dom.Box{X: x, Y: ly, Width: colW, Height: lineHeight})
			n.Href = "#"
			group.Append(n)
			ly += lineHeight + 8
		}
		group.Box.Height = ly - top
		content.Append(group)
		bottom = math.Max(bottom, group.Box.Bottom())
	}

	y := bottom + 64
	for i, s := range c.Footer.Socials {
		n := text(FooterSocial(i), dom.KindLink, s, dom.Box{X: pad + float64(i)*56, Y: y, Width: 40, Height: 40})
		n.Href = "#"
		content.Append(n)
	}
	copyright := text(FooterCopyright, dom.KindText, c.Footer.Copyright, dom.Box{X: pad, Y: y + 64, Width: content.Box.Width, Height: lineHeight})
	copyright.Label = c.Footer.Legal
	content.Append(copyright)
	content.Box.Height = y + 64 + lineHeight - content.Box.Y

	sec.Append(content)
	sec.Box.Height = content.Box.Bottom() + 80
	return sec
}
