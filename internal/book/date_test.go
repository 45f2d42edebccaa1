package book

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "1965-01-01", want: NewDate(1965, time.January, 1)},
		{in: "1965-01-01T00:00:00.000Z", want: NewDate(1965, time.January, 1)},
		{in: "1965-08-01T23:30:00-02:00", want: NewDate(1965, time.August, 2)},
		{in: "01/01/1965", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDate_JSON(t *testing.T) {
	b, err := json.Marshal(Book{PublishedDate: NewDate(1965, time.January, 1)})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"publishedDate":"1965-01-01"`)

	b, err = json.Marshal(Book{})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"publishedDate":null`)

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2001-09-11"`), &d))
	assert.Equal(t, "2001-09-11", d.String())

	assert.Error(t, json.Unmarshal([]byte(`20010911`), &d))
}
