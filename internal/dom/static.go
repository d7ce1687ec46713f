package dom

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// staticNode is a Node over an already-rendered HTML snapshot. Clicks are
// accepted and ignored: a snapshot has no scripts to react to them.
type staticNode struct {
	sel *goquery.Selection
}

func NewStaticNode(sel *goquery.Selection) Node {
	return staticNode{sel: sel}
}

// ParseHTML parses a full document and returns its root node.
func ParseHTML(r io.Reader) (Node, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return staticNode{sel: doc.Selection}, nil
}

func (n staticNode) FindOne(selector string) (Node, error) {
	match := n.sel.Find(selector)
	if match.Length() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, selector)
	}
	return staticNode{sel: match.First()}, nil
}

func (n staticNode) FindAll(selector string) ([]Node, error) {
	var nodes []Node
	n.sel.Find(selector).Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, staticNode{sel: s})
	})
	return nodes, nil
}

func (n staticNode) Text() (string, error) {
	return strings.TrimSpace(n.sel.Text()), nil
}

func (n staticNode) Attr(name string) (string, error) {
	v, ok := n.sel.Attr(name)
	if !ok {
		return "", fmt.Errorf("%w: attribute %s", ErrNotFound, name)
	}
	return v, nil
}

func (n staticNode) Click() error {
	return nil
}

// StaticPage serves one saved snapshot no matter which URL is requested.
// It backs the offline parse command and the scraper tests.
type StaticPage struct {
	root    Node
	Visited []string
	// Fail makes every navigation report failure.
	Fail bool
}

func NewStaticPage(root Node) *StaticPage {
	return &StaticPage{root: root}
}

func StaticPageFromString(html string) (*StaticPage, error) {
	root, err := ParseHTML(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	return NewStaticPage(root), nil
}

func StaticPageFromFile(path string) (*StaticPage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	root, err := ParseHTML(f)
	if err != nil {
		return nil, err
	}
	return NewStaticPage(root), nil
}

func (p *StaticPage) Navigate(url string) bool {
	p.Visited = append(p.Visited, url)
	return !p.Fail
}

func (p *StaticPage) Root() Node {
	return p.root
}

func (p *StaticPage) Close() error {
	return nil
}
