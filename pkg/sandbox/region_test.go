package sandbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRegionExplicit(t *testing.T) {
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("AWS_DEFAULT_REGION", "eu-central-1")

	assert.Equal(t, "ap-southeast-2", ResolveRegion("ap-southeast-2"))
}

func TestResolveRegionEnvironmentChain(t *testing.T) {
	tests := []struct {
		name             string
		awsRegion        string
		awsDefaultRegion string
		want             string
	}{
		{
			name:             "AWS_REGION wins over AWS_DEFAULT_REGION",
			awsRegion:        "eu-west-1",
			awsDefaultRegion: "eu-central-1",
			want:             "eu-west-1",
		},
		{
			name:             "AWS_DEFAULT_REGION used when AWS_REGION unset",
			awsDefaultRegion: "eu-central-1",
			want:             "eu-central-1",
		},
		{
			name: "default when nothing set",
			want: DefaultRegion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AWS_REGION", tt.awsRegion)
			t.Setenv("AWS_DEFAULT_REGION", tt.awsDefaultRegion)

			assert.Equal(t, tt.want, ResolveRegion(""))
		})
	}
}
