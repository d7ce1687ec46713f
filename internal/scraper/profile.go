package scraper

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"go-xscraper/internal/dom"
	"go-xscraper/internal/extract"
	"go-xscraper/internal/models"
)

var (
	ErrMissingIdentity = errors.New("identity container not found")
	ErrMissingHandle   = errors.New("handle not found")
)

// BuildProfile reads the profile header of a loaded profile page. Only the
// handle is required; the display name, description and avatar fall back to
// empty strings.
func BuildProfile(root dom.Node, clickSettle time.Duration) (models.Profile, error) {
	container, err := root.FindOne(UserNameContainer)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %v", ErrMissingIdentity, err)
	}

	handle, err := findHandle(container)
	if err != nil {
		return models.Profile{}, err
	}

	profile := models.Profile{
		ProfileName: extract.TextOr(container, DisplayName, ""),
		Username:    strings.TrimPrefix(handle, handlePrefix),
		//having a description is not mandatory
		Description: extract.TextOr(root, UserDescription, ""),
		ImgURL:      avatarURL(root, clickSettle),
	}
	if err := profile.Validate(); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// findHandle returns the first span inside the identity container whose text
// starts with "@".
func findHandle(container dom.Node) (string, error) {
	spans, err := container.FindAll(HandleCandidates)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMissingHandle, err)
	}
	for _, span := range spans {
		text, err := span.Text()
		if err != nil {
			continue
		}
		text = extract.Clean(text)
		if strings.HasPrefix(text, handlePrefix) && len(text) > len(handlePrefix) {
			return text, nil
		}
	}
	return "", ErrMissingHandle
}

// avatarURL opens the enlarged avatar and reads the full-size image from the
// dialog. The thumbnail itself does not carry that URL.
func avatarURL(root dom.Node, clickSettle time.Duration) string {
	avatar, err := root.FindOne(AvatarContainer)
	if err != nil {
		log.Printf("    ⚠️ Avatar not found: %v", err)
		return ""
	}

	if err := avatar.Click(); err != nil {
		log.Printf("    ⚠️ Could not open avatar: %v", err)
		return ""
	}
	time.Sleep(clickSettle)

	src, err := extract.Attr(root, ExpandedAvatarImg, "src")
	if err != nil {
		log.Printf("    ⚠️ Expanded avatar image not found: %v", err)
		return ""
	}
	return src
}
