// README: Weight tier rate card.
package shipping

// rateTiers is ordered by MaxWeight. Rates are cents, indexed by zone-1.
var rateTiers = []Tier{
	{MaxWeight: 1, Rates: [zoneCount]int64{895, 995, 1095, 1195, 1295, 1395, 1495, 1595}},
	{MaxWeight: 2, Rates: [zoneCount]int64{995, 1095, 1295, 1395, 1495, 1595, 1695, 1795}},
	{MaxWeight: 3, Rates: [zoneCount]int64{1095, 1295, 1495, 1695, 1795, 1895, 1995, 2095}},
	{MaxWeight: 5, Rates: [zoneCount]int64{1295, 1495, 1695, 1895, 2095, 2295, 2495, 2695}},
	{MaxWeight: 10, Rates: [zoneCount]int64{1695, 1995, 2295, 2595, 2795, 3095, 3295, 3495}},
	{MaxWeight: 15, Rates: [zoneCount]int64{2095, 2495, 2795, 3095, 3395, 3695, 3995, 4295}},
	{MaxWeight: 20, Rates: [zoneCount]int64{2495, 2895, 3295, 3595, 3995, 4395, 4795, 5195}},
	{MaxWeight: 25, Rates: [zoneCount]int64{2895, 3395, 3795, 4195, 4595, 5095, 5595, 6095}},
	{MaxWeight: 30, Rates: [zoneCount]int64{3395, 3895, 4395, 4795, 5295, 5895, 6495, 6995}},
	{MaxWeight: 35, Rates: [zoneCount]int64{3895, 4495, 5095, 5495, 5995, 6595, 7195, 7795}},
	{MaxWeight: 40, Rates: [zoneCount]int64{4395, 5095, 5795, 6295, 6795, 7395, 7995, 8595}},
	{MaxWeight: 45, Rates: [zoneCount]int64{4895, 5695, 6495, 6995, 7595, 8195, 8795, 9395}},
	{MaxWeight: 50, Rates: [zoneCount]int64{5395, 6295, 7195, 7795, 8395, 8995, 9695, 10395}},
	{MaxWeight: 60, Rates: [zoneCount]int64{6395, 7395, 8395, 8995, 9695, 10395, 11195, 11995}},
	{MaxWeight: 70, Rates: [zoneCount]int64{7395, 8495, 9595, 10295, 10995, 11795, 12595, 13395}},
	{MaxWeight: 80, Rates: [zoneCount]int64{8395, 9595, 10795, 11595, 12395, 13195, 13995, 14795}},
	{MaxWeight: 90, Rates: [zoneCount]int64{9395, 10695, 11995, 12895, 13795, 14595, 15395, 16195}},
	{MaxWeight: 100, Rates: [zoneCount]int64{10395, 11795, 13195, 14195, 15195, 15995, 16795, 17595}},
}
