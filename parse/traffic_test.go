package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trafficHeader = "Date,Socrata Users,Socrata Sessions,Socrata Pageviews,GeoHub Users,GeoHub Sessions,GeoHub Pageviews,Combined Users\n"

func TestTraffic_SortedAscendingByDate(t *testing.T) {
	days := Traffic(trafficHeader +
		"01/07/2025,1502,2088,5204,688,861,1844,2190\n" +
		"01/02/2025,1204,1680,4105,560,702,1511,1764\n" +
		"01/05/2025,795,1002,2391,388,461,988,1183\n")
	require.Len(t, days, 3)
	for i := 1; i < len(days); i++ {
		assert.LessOrEqual(t, days[i-1].DateMs, days[i].DateMs)
	}
	assert.Equal(t, "01/02/2025", days[0].DateLabel)
}

func TestTraffic_FieldExtraction(t *testing.T) {
	days := Traffic(trafficHeader + "01/02/2025,1204,1680,4105,560,702,1511,1764\n")
	require.Len(t, days, 1)

	d := days[0]
	require.NotNil(t, d.SocrataUsers)
	require.NotNil(t, d.GeohubUsers)
	assert.Equal(t, 1204, *d.SocrataUsers)
	assert.Equal(t, 560, *d.GeohubUsers)
	assert.Equal(t, 1764, d.CombinedUsers)

	want := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC).UnixMilli()
	assert.Equal(t, want, d.DateMs)
}

func TestTraffic_SynthesizesCombinedUsers(t *testing.T) {
	// Combined column blank: synthesized as socrata+geohub.
	days := Traffic(trafficHeader + "01/08/2025,1479,2043,5066,659,830,1760,\n")
	require.Len(t, days, 1)
	assert.Equal(t, 1479+659, days[0].CombinedUsers)

	// One operand missing counts as zero.
	days = Traffic(trafficHeader + "01/10/2025,1398,1932,4788,,790,1689,\n")
	require.Len(t, days, 1)
	assert.Equal(t, 1398, days[0].CombinedUsers)
	assert.Nil(t, days[0].GeohubUsers)
}

func TestTraffic_DropsRowsWithoutAnyUserValue(t *testing.T) {
	days := Traffic(trafficHeader +
		"01/08/2025,,2043,5066,,830,1760,\n" +
		"bad date,1204,1680,4105,560,702,1511,1764\n" +
		"01/09/2025,1433,1990,4901,642,811,1722,2075\n")
	require.Len(t, days, 1, "rows with no numeric user value or a bad date are dropped")
	assert.Equal(t, "01/09/2025", days[0].DateLabel)
}

func TestTraffic_CombinedColumnAloneKeepsRow(t *testing.T) {
	days := Traffic(trafficHeader + "01/08/2025,,2043,5066,,830,1760,1500\n")
	require.Len(t, days, 1)
	assert.Equal(t, 1500, days[0].CombinedUsers)
	assert.Nil(t, days[0].SocrataUsers)
	assert.Nil(t, days[0].GeohubUsers)
}

func TestTraffic_HandlesCRLFAndEmptyInput(t *testing.T) {
	days := Traffic("Date,Socrata Users,_,_,GeoHub Users,_,_,Combined Users\r\n01/02/2025,10,0,0,5,0,0,15\r\n")
	require.Len(t, days, 1)
	assert.Equal(t, 15, days[0].CombinedUsers)

	assert.Empty(t, Traffic(""))
}
