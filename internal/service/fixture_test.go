package service

import (
	"github.com/andhikaputrab/vgsales-dashboard/internal/app/appconfig"
	"github.com/andhikaputrab/vgsales-dashboard/internal/model"
)

func testConfig() *appconfig.Config {
	return &appconfig.Config{
		ConfigSpec: appconfig.ConfigSpec{
			TopNLimit:           10,
			TopNMax:             50,
			MovingAverageWindow: 3,
			MatrixRegions:       appconfig.MetricList(model.DefaultRegions),
			BatchConcurrency:    2,
			BatchMaxQueries:     4,
		},
	}
}

func testDataset() *model.Dataset {
	records := []*model.Record{
		{Rank: 1, Name: "Wii Sports", Platform: "Wii", Year: 2006, Genre: "Sports", Publisher: "Nintendo", NASales: 41.49, EUSales: 29.02, JPSales: 3.77, OtherSales: 8.46, GlobalSales: 82.74},
		{Rank: 2, Name: "Super Mario Bros.", Platform: "NES", Year: 1985, Genre: "Platform", Publisher: "Nintendo", NASales: 29.08, EUSales: 3.58, JPSales: 6.81, OtherSales: 0.77, GlobalSales: 40.24},
		{Rank: 3, Name: "Mario Kart Wii", Platform: "Wii", Year: 2008, Genre: "Racing", Publisher: "Nintendo", NASales: 15.85, EUSales: 12.88, JPSales: 3.79, OtherSales: 3.31, GlobalSales: 35.82},
		{Rank: 17, Name: "Grand Theft Auto V", Platform: "PS3", Year: 2013, Genre: "Action", Publisher: "Take-Two Interactive", NASales: 7.01, EUSales: 9.27, JPSales: 0.97, OtherSales: 4.14, GlobalSales: 21.40},
		{Rank: 30, Name: "Call of Duty: Modern Warfare 3", Platform: "X360", Year: 2011, Genre: "Shooter", Publisher: "Activision", NASales: 9.03, EUSales: 4.28, JPSales: 0.13, OtherSales: 1.32, GlobalSales: 14.76},
		{Rank: 33, Name: "Call of Duty: Black Ops", Platform: "X360", Year: 2010, Genre: "Shooter", Publisher: "Activision", NASales: 9.67, EUSales: 3.73, JPSales: 0.11, OtherSales: 1.13, GlobalSales: 14.64},
	}
	return model.NewDataset(records, "fixture", "c0ffee")
}

func newTestDashboard() *Dashboard {
	return NewDashboard(testConfig(), NewDataset(testDataset()))
}
