package memory

import "github.com/timetable-editor/internal/domain"

// LineStations - станции линии Karuizawa - Myoko-Kogen в каноническом порядке
func LineStations() []domain.Station {
	return []domain.Station{
		{ID: "karuizawa", Name: "軽井沢", NameEn: "Karuizawa", Order: 1},
		{ID: "naka-karuizawa", Name: "中軽井沢", NameEn: "Naka-Karuizawa", Order: 2},
		{ID: "shinano-oiwake", Name: "信濃追分", NameEn: "Shinano-Oiwake", Order: 3},
		{ID: "miyota", Name: "御代田", NameEn: "Miyota", Order: 4},
		{ID: "hirahara", Name: "平原", NameEn: "Hirahara", Order: 5},
		{ID: "komoro", Name: "小諸", NameEn: "Komoro", Order: 6},
		{ID: "shigeno", Name: "滋野", NameEn: "Shigeno", Order: 7},
		{ID: "tanaka", Name: "田中", NameEn: "Tanaka", Order: 8},
		{ID: "ohya", Name: "大屋", NameEn: "Ohya", Order: 9},
		{ID: "ueda", Name: "上田", NameEn: "Ueda", Order: 10},
		{ID: "nishi-ueda", Name: "西上田", NameEn: "Nishi-Ueda", Order: 11},
		{ID: "sakaki-techno", Name: "テクノさかき", NameEn: "Techno-Sakaki", Order: 12},
		{ID: "sakaki", Name: "坂城", NameEn: "Sakaki", Order: 13},
		{ID: "togura", Name: "戸倉", NameEn: "Togura", Order: 14},
		{ID: "chikuma", Name: "千曲", NameEn: "Chikuma", Order: 15},
		{ID: "yashiro", Name: "屋代", NameEn: "Yashiro", Order: 16},
		{ID: "yashiro-koukou-mae", Name: "屋代高校前", NameEn: "Yashiro-Koukou-Mae", Order: 17},
		{ID: "shinonoi", Name: "篠ノ井", NameEn: "Shinonoi", Order: 18},
		{ID: "imai", Name: "今井", NameEn: "Imai", Order: 19},
		{ID: "kawanakajima", Name: "川中島", NameEn: "Kawanakajima", Order: 20},
		{ID: "amori", Name: "安茂里", NameEn: "Amori", Order: 21},
		{ID: "nagano", Name: "長野", NameEn: "Nagano", Order: 22},
		{ID: "kita-nagano", Name: "北長野", NameEn: "Kita-Nagano", Order: 23},
		{ID: "sansai", Name: "三才", NameEn: "Sansai", Order: 24},
		{ID: "toyono", Name: "豊野", NameEn: "Toyono", Order: 25},
		{ID: "mure", Name: "牟礼", NameEn: "Mure", Order: 26},
		{ID: "furuma", Name: "古間", NameEn: "Furuma", Order: 27},
		{ID: "kurohime", Name: "黒姫", NameEn: "Kurohime", Order: 28},
		{ID: "myoko-kogen", Name: "妙高高原", NameEn: "Myoko-Kogen", Order: 29},
	}
}
