// Package site holds the promo page content and lays it out into a
// document for a given viewport.
package site

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var contentYAML []byte

type Content struct {
	Brand      string         `yaml:"brand"`
	Loading    LoadingContent `yaml:"loading"`
	Nav        NavContent     `yaml:"nav"`
	Hero       Hero           `yaml:"hero"`
	Products   Products       `yaml:"products"`
	Athletes   Athletes       `yaml:"athletes"`
	Technology Technology     `yaml:"technology"`
	Footer     Footer         `yaml:"footer"`
}

type LoadingContent struct {
	Title   string `yaml:"title"`
	Tagline string `yaml:"tagline"`
}

type NavLinkContent struct {
	Label  string `yaml:"label"`
	Target string `yaml:"target"`
}

type NavContent struct {
	Links     []NavLinkContent `yaml:"links"`
	Languages []string         `yaml:"languages"`
}

type Hero struct {
	Title     string `yaml:"title"`
	Subtitle  string `yaml:"subtitle"`
	CTA       string `yaml:"cta"`
	Video     string `yaml:"video"`
	SideLabel string `yaml:"side_label"`
	Particles int    `yaml:"particles"`
}

type Product struct {
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Price       string `yaml:"price"`
	Image       string `yaml:"image"`
	Description string `yaml:"description"`
}

type Products struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Items       []Product `yaml:"items"`
}

type Stat struct {
	Number string `yaml:"number"`
	Label  string `yaml:"label"`
}

type Athletes struct {
	Title       string `yaml:"title"`
	Quote       string `yaml:"quote"`
	Attribution string `yaml:"attribution"`
	Video       string `yaml:"video"`
	CTA         string `yaml:"cta"`
	Stats       []Stat `yaml:"stats"`
}

type Tech struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

type Technology struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	SideLabel   string `yaml:"side_label"`
	Items       []Tech `yaml:"items"`
}

type LinkGroup struct {
	Title string   `yaml:"title"`
	Links []string `yaml:"links"`
}

type Footer struct {
	Tagline   string      `yaml:"tagline"`
	Groups    []LinkGroup `yaml:"groups"`
	Socials   []string    `yaml:"socials"`
	Copyright string      `yaml:"copyright"`
	Legal     string      `yaml:"legal"`
}

// DefaultContent parses the embedded page content.
func DefaultContent() (Content, error) {
	return ParseContent(contentYAML)
}

func ParseContent(data []byte) (Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Content{}, fmt.Errorf("site: parse content: %w", err)
	}
	return c, nil
}

// MustContent is DefaultContent for callers that cannot recover from a
// broken embedded file.
func MustContent() Content {
	c, err := DefaultContent()
	if err != nil {
		panic(err)
	}
	return c
}
