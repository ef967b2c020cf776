package forks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumns_Order(t *testing.T) {
	cols := Columns()
	require.Len(t, cols, 9)

	labels := make([]string, len(cols))
	for i, c := range cols {
		labels[i] = c.Label
	}

	assert.Equal(t, []string{"Link", "Owner", "Name", "Branch", "Stars", "Forks", "Open Issues", "Size", "Last Push"}, labels)

	cols[0].Label = "changed"
	assert.Equal(t, "Link", Columns()[0].Label, "Columns must return a copy")
}

func TestColumnIndex(t *testing.T) {
	assert.Equal(t, 4, ColumnIndex("Stars"))
	assert.Equal(t, 4, ColumnIndex("stars"))
	assert.Equal(t, 4, ColumnIndex("stargazers_count"))
	assert.Equal(t, 6, ColumnIndex(" Open Issues "))
	assert.Equal(t, -1, ColumnIndex("Watchers"))
}

func TestSynthesizeOwner(t *testing.T) {
	tests := []struct {
		name  string
		owner *Owner
		want  OwnerCell
		text  string
	}{
		{
			name:  "full owner",
			owner: &Owner{Login: "octocat", AvatarURL: "https://avatars.githubusercontent.com/u/583231?v=4"},
			want:  OwnerCell{AvatarURL: "https://avatars.githubusercontent.com/u/583231?v=4&s=48", Login: "octocat", Known: true},
			text:  "octocat",
		},
		{
			name:  "missing avatar",
			owner: &Owner{Login: "ghost"},
			want:  OwnerCell{AvatarURL: DefaultAvatarURL + "&s=48", Login: "ghost", Known: true},
			text:  "ghost",
		},
		{
			name: "missing owner",
			want: OwnerCell{AvatarURL: DefaultAvatarURL + "&s=48"},
			text: UnknownOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SynthesizeOwner(tt.owner)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.text, got.String())
		})
	}
}

func TestProject(t *testing.T) {
	pushed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rec := Repository{
		FullName:        "octocat/Hello-World",
		Name:            "Hello-World",
		DefaultBranch:   "master",
		StargazersCount: 5,
		Forks:           2,
		OpenIssuesCount: 1,
		Size:            108,
		PushedAt:        pushed,
		Owner:           &Owner{Login: "octocat"},
	}

	row := Project(rec)
	require.Len(t, row.Values, 9)

	assert.Equal(t, "https://github.com/octocat/Hello-World", row.Values[0])
	assert.Equal(t, "octocat", row.Values[1].(OwnerCell).Login)
	assert.Equal(t, "Hello-World", row.Values[2])
	assert.Equal(t, "master", row.Values[3])
	assert.Equal(t, 5, row.Values[4])
	assert.Equal(t, 2, row.Values[5])
	assert.Equal(t, 1, row.Values[6])
	assert.Equal(t, 108, row.Values[7])
	assert.Equal(t, pushed, row.Values[8])
}

func TestOriginFields(t *testing.T) {
	rec := Repository{
		FullName:        "octocat/Hello-World",
		Name:            "Hello-World",
		StargazersCount: 10,
		PushedAt:        time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	fields := OriginFields(rec)
	require.Len(t, fields, 9)

	assert.Equal(t, Field{Label: "Link", Key: KeyRepoLink, Value: "https://github.com/octocat/Hello-World"}, fields[0])
	assert.Equal(t, UnknownOwner, fields[1].Value)
	assert.Equal(t, "10", fields[4].Value)
	assert.Equal(t, "2024-05-01T12:00:00Z", fields[8].Value)
}

func TestRepository_Validate(t *testing.T) {
	require.ErrorIs(t, Repository{}.Validate(), ErrMissingFullName)
	require.NoError(t, Repository{FullName: "a/b"}.Validate())
}
