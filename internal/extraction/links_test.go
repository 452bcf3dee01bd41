package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLinks_CommonProfiles(t *testing.T) {
	text := "jane@example.com\nlinkedin.com/in/jane\ngithub.com/jane"

	links := ExtractLinks(text)

	assert.Equal(t, []string{"jane@example.com"}, links["email"])
	require.Len(t, links["linkedin"], 1)
	assert.Contains(t, links["linkedin"][0], "linkedin.com/in/jane")
	require.Len(t, links["github"], 1)
	assert.Contains(t, links["github"][0], "github.com/jane")
}

func TestExtractLinks_Phone(t *testing.T) {
	links := ExtractLinks("Call me at +1 555-123-4567")

	assert.NotEmpty(t, links["phone"])
}

func TestExtractLinks_PortfolioExcludesDedicatedDomains(t *testing.T) {
	text := "https://janedoe.dev\nhttps://github.com/jane\nhttps://linkedin.com/in/jane"

	links := ExtractLinks(text)

	require.Contains(t, links, "portfolio")
	for _, p := range links["portfolio"] {
		assert.NotContains(t, p, "github.com")
		assert.NotContains(t, p, "linkedin.com")
	}
	assert.Contains(t, links["portfolio"], "https://janedoe.dev")
}

func TestExtractLinks_PortfolioKeyKeptWhenAllMatchesFiltered(t *testing.T) {
	links := ExtractLinks("github.com/jane")

	require.Contains(t, links, "portfolio")
	assert.Empty(t, links["portfolio"])
}

func TestExtractLinks_AbsentKindsOmitted(t *testing.T) {
	links := ExtractLinks("no links in this text at all")

	assert.NotContains(t, links, "email")
	assert.NotContains(t, links, "linkedin")
	assert.NotContains(t, links, "github")
	assert.NotContains(t, links, "leetcode")
}

func TestExtractLinks_Deduplicated(t *testing.T) {
	text := "github.com/jane\ngithub.com/jane"

	links := ExtractLinks(text)

	assert.Equal(t, []string{"github.com/jane"}, links["github"])
}

func TestExtractLinks_Leetcode(t *testing.T) {
	links := ExtractLinks("Practice profile: leetcode.com/janedoe")

	require.Len(t, links["leetcode"], 1)
}

func TestExtractLinks_EmptyText(t *testing.T) {
	assert.Empty(t, ExtractLinks(""))
}
