package engine

import (
	"github.com/andhikaputrab/vgsales-dashboard/internal/model"
)

func rec(rank, year int, genre, platform, publisher string, na, eu, jp, other float64) *model.Record {
	return &model.Record{
		Rank:        rank,
		Name:        genre + " title " + platform,
		Platform:    platform,
		Year:        year,
		Genre:       genre,
		Publisher:   publisher,
		NASales:     na,
		EUSales:     eu,
		JPSales:     jp,
		OtherSales:  other,
		GlobalSales: na + eu + jp + other,
	}
}

func fixtureDataset() *model.Dataset {
	return model.NewDataset([]*model.Record{
		rec(1, 2006, "Sports", "Wii", "Nintendo", 41.49, 29.02, 3.77, 8.46),
		rec(2, 1985, "Platform", "NES", "Nintendo", 29.08, 3.58, 6.81, 0.77),
		rec(3, 2008, "Racing", "Wii", "Nintendo", 15.85, 12.88, 3.79, 3.31),
		rec(4, 2009, "Sports", "Wii", "Nintendo", 15.75, 11.01, 3.28, 2.96),
		rec(5, 1996, "Role-Playing", "GB", "Nintendo", 11.27, 8.89, 10.22, 1.00),
		rec(6, 2013, "Action", "PS3", "Take-Two Interactive", 7.01, 9.27, 0.97, 4.14),
		rec(7, 2011, "Shooter", "X360", "Activision", 9.03, 4.28, 0.13, 1.32),
		rec(8, 2010, "Shooter", "X360", "Activision", 9.67, 3.73, 0.11, 1.13),
		rec(9, 2013, "Action", "X360", "Take-Two Interactive", 9.63, 5.31, 0.06, 1.38),
		rec(10, 2008, "Action", "PS3", "Take-Two Interactive", 0, 0, 0, 0),
		rec(11, 2006, "Role-Playing", "DS", "Nintendo", 6.42, 4.52, 6.04, 1.37),
		rec(12, 2010, "Misc", "X360", "Microsoft Game Studios", 15.0, 4.89, 0.24, 1.69),
	}, "fixture", "f00d")
}

// scenarioDataset is the three record dataset of the worked filtering example.
func scenarioDataset() *model.Dataset {
	return model.NewDataset([]*model.Record{
		{Rank: 1, Name: "a", Year: 2000, Genre: "Action", Platform: "PS2", Publisher: "P", GlobalSales: 1.0},
		{Rank: 2, Name: "b", Year: 2000, Genre: "Sports", Platform: "PS2", Publisher: "P", GlobalSales: 2.0},
		{Rank: 3, Name: "c", Year: 2001, Genre: "Action", Platform: "PS2", Publisher: "P", GlobalSales: 3.0},
	}, "scenario", "")
}

func sumOf(view []*model.Record, metric model.Metric) float64 {
	var total float64
	for _, r := range view {
		total += metric.Of(r)
	}
	return total
}
