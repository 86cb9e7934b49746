package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventRecordDateRange(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{name: "calendar dates", start: "2025-02-14", end: "2025-02-16", want: "Feb 14 - Feb 16"},
		{name: "timestamps", start: "2025-07-01T09:00:00Z", end: "2025-07-07T18:00:00Z", want: "Jul 1 - Jul 7"},
		{name: "missing end", start: "2025-05-05", want: "May 5"},
		{name: "unparseable kept", start: "TBA", end: "2025-05-10", want: "TBA - May 10"},
		{name: "empty", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := EventRecord{StartDate: tc.start, EndDate: tc.end}
			assert.Equal(t, tc.want, rec.DateRange())
		})
	}
}

func TestLeadFormFieldsWithField(t *testing.T) {
	var f LeadFormFields
	for _, name := range LeadFieldNames {
		var ok bool
		f, ok = f.WithField(name, name+"-value")
		assert.True(t, ok, name)
	}
	for _, name := range LeadFieldNames {
		v, ok := f.Field(name)
		assert.True(t, ok)
		assert.Equal(t, name+"-value", v)
	}

	_, ok := f.WithField("phone", "555")
	assert.False(t, ok)
	_, ok = f.Field("phone")
	assert.False(t, ok)
}
