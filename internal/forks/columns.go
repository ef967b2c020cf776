package forks

import (
	"strconv"
	"strings"
	"time"
)

// Key names the source field of a column.
type Key string

const (
	KeyRepoLink        Key = "repoLink"
	KeyOwnerName       Key = "ownerName"
	KeyName            Key = "name"
	KeyDefaultBranch   Key = "default_branch"
	KeyStargazersCount Key = "stargazers_count"
	KeyForks           Key = "forks"
	KeyOpenIssuesCount Key = "open_issues_count"
	KeySize            Key = "size"
	KeyPushedAt        Key = "pushed_at"
)

// Kind decides how raw values of a column compare and parse.
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindTime
)

// Column pairs a display label with the key of its source field.
type Column struct {
	Label string
	Key   Key
	Kind  Kind
}

const (
	// DefaultAvatarURL is used when an owner has no avatar.
	DefaultAvatarURL = "https://avatars.githubusercontent.com/u/0?v=4"

	// UnknownOwner marks rows whose owner data is absent.
	UnknownOwner = "Unknown"

	// SortColumnLabel is the column the table is sorted by, descending, on load.
	SortColumnLabel = "Stars"

	avatarSizeParam = "&s=48"
	githubWeb       = "https://github.com/"
)

var defaultColumns = []Column{
	{Label: "Link", Key: KeyRepoLink, Kind: KindText},
	{Label: "Owner", Key: KeyOwnerName, Kind: KindText},
	{Label: "Name", Key: KeyName, Kind: KindText},
	{Label: "Branch", Key: KeyDefaultBranch, Kind: KindText},
	{Label: "Stars", Key: KeyStargazersCount, Kind: KindNumber},
	{Label: "Forks", Key: KeyForks, Kind: KindNumber},
	{Label: "Open Issues", Key: KeyOpenIssuesCount, Kind: KindNumber},
	{Label: "Size", Key: KeySize, Kind: KindNumber},
	{Label: "Last Push", Key: KeyPushedAt, Kind: KindTime},
}

// Columns returns a copy of the column model in display order.
func Columns() []Column {
	out := make([]Column, len(defaultColumns))
	copy(out, defaultColumns)

	return out
}

// ColumnIndex returns the position of the column with the given label or
// key, compared case-insensitively, or -1.
func ColumnIndex(name string) int {
	name = strings.TrimSpace(name)
	for i, c := range defaultColumns {
		if strings.EqualFold(c.Label, name) || strings.EqualFold(string(c.Key), name) {
			return i
		}
	}

	return -1
}

// OwnerCell is the synthesized owner column: avatar followed by login.
type OwnerCell struct {
	AvatarURL string `json:"avatar_url"`
	Login     string `json:"login"`
	Known     bool   `json:"known"`
}

func (o OwnerCell) String() string {
	if !o.Known {
		return UnknownOwner
	}

	return o.Login
}

// SynthesizeOwner builds the owner column value, falling back to the
// default avatar and the Unknown marker when data is missing.
func SynthesizeOwner(owner *Owner) OwnerCell {
	cell := OwnerCell{AvatarURL: DefaultAvatarURL + avatarSizeParam}
	if owner == nil {
		return cell
	}

	if owner.AvatarURL != "" {
		cell.AvatarURL = owner.AvatarURL + avatarSizeParam
	}

	cell.Login = owner.Login
	cell.Known = true

	return cell
}

// RepoLink builds the synthesized link column value.
func RepoLink(fullName string) string {
	return githubWeb + fullName
}

// Value returns the raw value of the field behind key: string, int,
// time.Time or OwnerCell. Sorting and filtering use these values.
func (r Repository) Value(key Key) any {
	switch key {
	case KeyRepoLink:
		return RepoLink(r.FullName)
	case KeyOwnerName:
		return SynthesizeOwner(r.Owner)
	case KeyName:
		return r.Name
	case KeyDefaultBranch:
		return r.DefaultBranch
	case KeyStargazersCount:
		return r.StargazersCount
	case KeyForks:
		return r.Forks
	case KeyOpenIssuesCount:
		return r.OpenIssuesCount
	case KeySize:
		return r.Size
	case KeyPushedAt:
		return r.PushedAt
	}

	return nil
}

// Row is one record projected through the column model.
type Row struct {
	Record Repository
	Values []any
}

// Project synthesizes the derived fields and returns the record's values
// in column order.
func Project(r Repository) Row {
	values := make([]any, len(defaultColumns))
	for i, c := range defaultColumns {
		values[i] = r.Value(c.Key)
	}

	return Row{Record: r, Values: values}
}

// Field is one label/value pair of the origin panel.
type Field struct {
	Label string `json:"label"`
	Key   Key    `json:"key"`
	Value string `json:"value"`
}

// OriginFields projects the origin record through the same column model
// as the fork table. Values are raw, without display transforms.
func OriginFields(r Repository) []Field {
	fields := make([]Field, len(defaultColumns))
	for i, c := range defaultColumns {
		fields[i] = Field{Label: c.Label, Key: c.Key, Value: Text(r.Value(c.Key))}
	}

	return fields
}

// Text formats a raw value for searching and for non-display output.
func Text(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case time.Time:
		if val.IsZero() {
			return ""
		}

		return val.UTC().Format(time.RFC3339)
	case OwnerCell:
		return val.String()
	case nil:
		return ""
	}

	return ""
}
