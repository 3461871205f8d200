package site

import "fmt"

// Section IDs double as in-page navigation targets.
const (
	SectionHero       = "hero"
	SectionProducts   = "products"
	SectionAthletes   = "athletes"
	SectionTechnology = "technology"
	SectionFooter     = "footer"
)

// Sections lists the scrolling sections in page order.
var Sections = []string{SectionHero, SectionProducts, SectionAthletes, SectionTechnology, SectionFooter}

const (
	Page = "page"

	Loading         = "loading"
	LoadingLogo     = "loading-logo"
	LoadingTagline  = "loading-tagline"
	LoadingTrack    = "loading-track"
	LoadingProgress = "loading-progress"

	Nav      = "nav"
	NavLogo  = "nav-logo"
	NavLinks = "nav-links"
	NavLang  = "nav-lang"

	HeroVideo    = "hero-video"
	HeroOverlay  = "hero-overlay"
	HeroTitle    = "hero-title"
	HeroSubtitle = "hero-subtitle"
	HeroCTA      = "hero-cta"
	HeroSide     = "hero-side"

	ProductsTitle = "products-title"
	ProductsDesc  = "products-desc"

	AthletesVideo   = "athletes-video"
	AthletesOverlay = "athletes-overlay"
	AthletesContent = "athletes-content"
	AthletesTitle   = "athletes-title"
	AthletesQuote   = "athletes-quote"
	AthletesCTA     = "athletes-cta"

	TechBackground = "technology-bg"
	TechTitle      = "technology-title"
	TechDesc       = "technology-desc"
	TechSide       = "technology-side"

	FooterContent   = "footer-content"
	FooterLogo      = "footer-logo"
	FooterCopyright = "footer-copyright"
)

func NavLink(i int) string      { return fmt.Sprintf("nav-link-%d", i) }
func NavLanguage(i int) string  { return fmt.Sprintf("nav-lang-%d", i) }
func HeroParticle(i int) string { return fmt.Sprintf("hero-particle-%d", i) }

func ProductCard(i int) string        { return fmt.Sprintf("product-card-%d", i) }
func ProductImage(i int) string       { return ProductCard(i) + "-image" }
func ProductOverlay(i int) string     { return ProductCard(i) + "-overlay" }
func ProductInfo(i int) string        { return ProductCard(i) + "-info" }
func AthleteStat(i int) string        { return fmt.Sprintf("athletes-stat-%d", i) }
func AthleteStatNumber(i int) string  { return AthleteStat(i) + "-number" }
func TechCard(i int) string           { return fmt.Sprintf("tech-card-%d", i) }
func TechFloat(i int) string          { return TechCard(i) + "-float" }
func TechCardBackground(i int) string { return TechCard(i) + "-bg" }
func TechIcon(i int) string           { return TechCard(i) + "-icon" }
func TechContent(i int) string        { return TechCard(i) + "-content" }
func FooterGroup(i int) string        { return fmt.Sprintf("footer-links-%d", i) }
func FooterSocial(i int) string       { return fmt.Sprintf("footer-social-%d", i) }
