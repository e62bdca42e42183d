package domain

func lineStations() []Station {
	return []Station{
		{ID: "ueda", Name: "上田", Order: 10},
		{ID: "karuizawa", Name: "軽井沢", Order: 1},
		{ID: "komoro", Name: "小諸", Order: 6},
		{ID: "nagano", Name: "長野", Order: 22},
		{ID: "toyono", Name: "豊野", Order: 25},
	}
}

func checkedRows(ids ...string) []EditorRow {
	rows := make([]EditorRow, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, EditorRow{StationID: id, Checked: true})
	}
	return rows
}
