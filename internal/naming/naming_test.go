package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		raw      string
		camel    string
		pascal   string
		singular string
		plural   string
	}{
		{"post", "post", "Post", "Post", "Posts"},
		{"posts", "posts", "Posts", "Post", "Posts"},
		{"user_profile", "userProfile", "UserProfile", "UserProfile", "UserProfiles"},
		{"user_profiles", "userProfiles", "UserProfiles", "UserProfile", "UserProfiles"},
		{"order_item", "orderItem", "OrderItem", "OrderItem", "OrderItems"},
		// ss/us/is suffixes are not stripped; the name is treated as
		// singular even though that can produce an awkward plural. The
		// overrides table is the fix for names where that matters.
		{"address", "address", "Address", "Address", "Addresss"},
		{"axis", "axis", "Axis", "Axis", "Axiss"},
		// overrides win over the general rule
		{"user_type", "userType", "UserType", "UserType", "UserTypes"},
		{"status", "status", "Status", "Status", "Statuses"},
		{"person", "person", "Person", "Person", "People"},
		{"analysis", "analysis", "Analysis", "Analysis", "Analyses"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			f := Derive(tt.raw)
			assert.Equal(t, tt.camel, f.Camel)
			assert.Equal(t, tt.pascal, f.Pascal)
			assert.Equal(t, tt.singular, f.Singular)
			assert.Equal(t, tt.plural, f.Plural)
		})
	}
}

func TestPascalHasNoUnderscores(t *testing.T) {
	for _, raw := range []string{"a", "a_b", "a_b_c", "user_type", "multi_word_table_name"} {
		f := Derive(raw)
		assert.NotContains(t, f.Pascal, "_", "pascal form of %q", raw)
		assert.NotContains(t, f.Camel, "_", "camel form of %q", raw)
	}
}

func TestSegmentCasing(t *testing.T) {
	// Mixed-case input segments are normalized, not passed through.
	f := Derive("user_TYPE")
	assert.Equal(t, "UserType", f.Pascal)
	assert.Equal(t, "userType", f.Camel)
}

func TestCamelEqualsLoweredPascalForSnakeInput(t *testing.T) {
	for _, raw := range []string{"post", "user_type", "order_items"} {
		f := Derive(raw)
		assert.Equal(t, LowerFirst(f.Pascal), f.Camel, "raw %q", raw)
	}
}

func TestLowerFirst(t *testing.T) {
	assert.Equal(t, "", LowerFirst(""))
	assert.Equal(t, "userTypes", LowerFirst("UserTypes"))
	assert.Equal(t, "people", LowerFirst("People"))
}

func TestSingularDiffersFromPascalOnlyWhenRuleApplies(t *testing.T) {
	for _, raw := range []string{"post", "comment", "tag"} {
		f := Derive(raw)
		assert.Equal(t, f.Pascal, f.Singular)
		assert.Equal(t, f.Pascal+"s", f.Plural)
	}
	f := Derive("comments")
	assert.True(t, strings.HasSuffix(f.Pascal, "s"))
	assert.Equal(t, "Comment", f.Singular)
	assert.Equal(t, "Comments", f.Plural)
}
