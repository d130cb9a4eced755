package reward

const (
	cashImage    = "/rewards/cash.png"
	mysteryImage = "/rewards/mystery.png"
)

var defaultEntries = []Reward{
	{ID: 1, Name: "$0.50", Image: cashImage, Chance: 20, Category: CategoryCash},
	{ID: 2, Name: "$1.00", Image: cashImage, Chance: 18, Category: CategoryCash},
	{ID: 3, Name: "$2.50", Image: cashImage, Chance: 15, Category: CategoryCash},
	{ID: 4, Name: "$5.00", Image: cashImage, Chance: 12, Category: CategoryCash},
	{ID: 5, Name: "$10.00", Image: cashImage, Chance: 10, Category: CategoryCash},
	{ID: 6, Name: "$25.00", Image: cashImage, Chance: 7, Category: CategoryCash},
	{ID: 7, Name: "$50.00", Image: cashImage, Chance: 4, Category: CategoryCash},
	{ID: 8, Name: "$100.00", Image: cashImage, Chance: 2, Category: CategoryCash},
	{ID: 9, Name: MysteryName, Image: mysteryImage, Chance: 8, Category: CategoryMystery},
	{ID: 10, Name: MysteryName, Image: mysteryImage, Chance: 4, Category: CategoryMystery},
}

var defaultCatalog = []string{"$5.00", "$10.00", "$25.00", "$50.00", "$100.00", "$250.00", "$500.00"}

// DefaultTable 默认十扇区奖励表
func DefaultTable() *Table {
	t, err := NewTable(defaultEntries)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultCatalog 神秘盒隐藏奖池，均匀抽取
func DefaultCatalog() []string {
	return append([]string(nil), defaultCatalog...)
}
