package arr

import (
	"context"
	"encoding/json"
	"fmt"
)

// RootFolder is a storage root configured in the service.
type RootFolder struct {
	ID         int64  `json:"id"`
	Path       string `json:"path"`
	Accessible bool   `json:"accessible"`
	FreeSpace  int64  `json:"freeSpace"`
}

// QualityProfile is a quality tier configured in the service.
type QualityProfile struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// RootFolders returns the configured storage roots in service order.
func (c *Client) RootFolders(ctx context.Context) ([]RootFolder, error) {
	raw, err := c.Get(ctx, "/rootfolder", nil)
	if err != nil {
		return nil, err
	}
	var folders []RootFolder
	if err := json.Unmarshal(raw, &folders); err != nil {
		return nil, fmt.Errorf("decode root folders: %w", err)
	}
	return folders, nil
}

// QualityProfiles returns the configured quality profiles in service order.
func (c *Client) QualityProfiles(ctx context.Context) ([]QualityProfile, error) {
	raw, err := c.Get(ctx, "/qualityprofile", nil)
	if err != nil {
		return nil, err
	}
	var profiles []QualityProfile
	if err := json.Unmarshal(raw, &profiles); err != nil {
		return nil, fmt.Errorf("decode quality profiles: %w", err)
	}
	return profiles, nil
}
