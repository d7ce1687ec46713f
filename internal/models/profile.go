package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrEmptyUsername = errors.New("username is empty")

// Profile is a person tracked by the backend. ID stays nil until the backend
// has assigned one.
type Profile struct {
	ID          *int   `json:"id,omitempty"`
	ProfileName string `json:"profileName"`
	Username    string `json:"username"`
	Description string `json:"description"`
	ImgURL      string `json:"imgUrl"`
}

func (p Profile) Validate() error {
	if strings.TrimSpace(p.Username) == "" {
		return ErrEmptyUsername
	}
	return nil
}

// HasID reports whether the backend already registered this profile.
func (p Profile) HasID() bool {
	return p.ID != nil
}

func (p Profile) String() string {
	return fmt.Sprintf("Profile: %s, Username: %s, Description: %q, Image: %s", p.ProfileName, p.Username, p.Description, p.ImgURL)
}

// rawProfile keeps every field nullable so absent and null values can be told
// apart from empty strings while decoding.
type rawProfile struct {
	ID          *int    `json:"id"`
	ProfileName *string `json:"profileName"`
	Username    *string `json:"username"`
	Description *string `json:"description"`
	ImgURL      *string `json:"imgUrl"`
}

// ParseProfiles decodes the backend identity list. Entries without a
// username are rejected; other null text fields become empty strings.
func ParseProfiles(data []byte) ([]Profile, error) {
	var raw []rawProfile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode people: %w", err)
	}

	people := make([]Profile, 0, len(raw))
	for i, r := range raw {
		p := Profile{
			ID:          r.ID,
			ProfileName: deref(r.ProfileName),
			Username:    deref(r.Username),
			Description: deref(r.Description),
			ImgURL:      deref(r.ImgURL),
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("person %d: %w", i, err)
		}
		if p.ID != nil && *p.ID < 0 {
			return nil, fmt.Errorf("person %d: negative id %d", i, *p.ID)
		}
		people = append(people, p)
	}
	return people, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
