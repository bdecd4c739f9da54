package domain

import (
	"strings"

	"github.com/Syug0/LOL-team-assignment/internal/constants"
)

// PlayerHandle is either a Riot ID (GameName + TagLine) or a pre-Riot-ID summoner name.
type PlayerHandle struct {
	GameName   string
	TagLine    string
	LegacyName string
}

func (h PlayerHandle) IsRiotID() bool {
	return h.GameName != ""
}

func (h PlayerHandle) String() string {
	if h.IsRiotID() {
		return h.GameName + constants.HandleSeparator + h.TagLine
	}
	return h.LegacyName
}

// ParseHandle splits free-form input on the first separator. Input without a separator is a legacy name.
func ParseHandle(input string) (PlayerHandle, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return PlayerHandle{}, NewValidationError("handle", "must not be empty")
	}

	gameName, tagLine, found := strings.Cut(input, constants.HandleSeparator)
	if !found {
		return PlayerHandle{LegacyName: input}, nil
	}

	gameName = strings.TrimSpace(gameName)
	tagLine = strings.TrimSpace(tagLine)
	if gameName == "" || tagLine == "" {
		return PlayerHandle{}, NewValidationError("handle", "riot id needs both game name and tag line")
	}
	return PlayerHandle{GameName: gameName, TagLine: tagLine}, nil
}
