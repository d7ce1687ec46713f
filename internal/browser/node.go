package browser

import (
	"errors"
	"fmt"

	"go-xscraper/internal/dom"

	"github.com/playwright-community/playwright-go"
)

var errPageClick = errors.New("cannot click the page itself")

// pageNode is the document root of a live page.
type pageNode struct {
	page    playwright.Page
	timeout float64
}

func (n pageNode) FindOne(selector string) (dom.Node, error) {
	return firstOf(n.page.Locator(selector), selector, n.timeout)
}

func (n pageNode) FindAll(selector string) ([]dom.Node, error) {
	return allOf(n.page.Locator(selector), n.timeout)
}

func (n pageNode) Text() (string, error) {
	return n.page.Locator("body").InnerText(playwright.LocatorInnerTextOptions{
		Timeout: playwright.Float(n.timeout),
	})
}

func (n pageNode) Attr(name string) (string, error) {
	return "", fmt.Errorf("%w: attribute %s on page", dom.ErrNotFound, name)
}

func (n pageNode) Click() error {
	return errPageClick
}

// locatorNode wraps a locator that is known to match at least one element.
type locatorNode struct {
	loc     playwright.Locator
	timeout float64
}

func (n locatorNode) FindOne(selector string) (dom.Node, error) {
	return firstOf(n.loc.Locator(selector), selector, n.timeout)
}

func (n locatorNode) FindAll(selector string) ([]dom.Node, error) {
	return allOf(n.loc.Locator(selector), n.timeout)
}

func (n locatorNode) Text() (string, error) {
	return n.loc.InnerText(playwright.LocatorInnerTextOptions{
		Timeout: playwright.Float(n.timeout),
	})
}

func (n locatorNode) Attr(name string) (string, error) {
	v, err := n.loc.GetAttribute(name, playwright.LocatorGetAttributeOptions{
		Timeout: playwright.Float(n.timeout),
	})
	if err != nil {
		return "", err
	}
	//playwright returns "" for a null attribute
	if v == "" {
		return "", fmt.Errorf("%w: attribute %s", dom.ErrNotFound, name)
	}
	return v, nil
}

func (n locatorNode) Click() error {
	return n.loc.Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(n.timeout),
	})
}

// firstOf checks the match count first so a missing element fails fast
// instead of waiting for the locator timeout.
func firstOf(loc playwright.Locator, selector string, timeout float64) (dom.Node, error) {
	count, err := loc.Count()
	if err != nil {
		return nil, fmt.Errorf("count %s: %w", selector, err)
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: %s", dom.ErrNotFound, selector)
	}
	return locatorNode{loc: loc.First(), timeout: timeout}, nil
}

func allOf(loc playwright.Locator, timeout float64) ([]dom.Node, error) {
	locators, err := loc.All()
	if err != nil {
		return nil, err
	}
	nodes := make([]dom.Node, 0, len(locators))
	for _, l := range locators {
		nodes = append(nodes, locatorNode{loc: l, timeout: timeout})
	}
	return nodes, nil
}
