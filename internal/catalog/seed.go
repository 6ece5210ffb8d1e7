package catalog

var (
	catManicure = Name{EN: "Manicure", VI: "Làm Móng Tay", DE: "Maniküre"}
	catPedicure = Name{EN: "Pedicure", VI: "Làm Móng Chân", DE: "Pediküre"}
	catGel      = Name{EN: "Gel Nails", VI: "Móng Gel", DE: "Gel Nägel"}
	catAcrylic  = Name{EN: "Acrylic Nails", VI: "Móng Bột", DE: "Acrylnägel"}
	catDesign   = Name{EN: "Nail Design", VI: "Vẽ Móng", DE: "Nageldesign"}
)

// defaultServices is the salon's standard price list.
var defaultServices = []Service{
	{
		ID:       "manicure-classic",
		Name:     Name{EN: "Classic Manicure", VI: "Làm Móng Tay Cơ Bản", DE: "Klassische Maniküre"},
		Category: catManicure,
		Price:    25, Duration: 30,
	},
	{
		ID:       "manicure-shellac",
		Name:     Name{EN: "Manicure with Shellac", VI: "Làm Móng Tay Với Shellac", DE: "Maniküre mit Shellac"},
		Category: catManicure,
		Price:    35, Duration: 45,
	},
	{
		ID:       "pedicure-classic",
		Name:     Name{EN: "Classic Pedicure", VI: "Làm Móng Chân Cơ Bản", DE: "Klassische Pediküre"},
		Category: catPedicure,
		Price:    30, Duration: 45,
	},
	{
		ID:       "pedicure-shellac",
		Name:     Name{EN: "Pedicure with Shellac", VI: "Làm Móng Chân Với Shellac", DE: "Pediküre mit Shellac"},
		Category: catPedicure,
		Price:    40, Duration: 60,
	},
	{
		ID:       "gel-new-set",
		Name:     Name{EN: "Gel New Set", VI: "Đắp Gel Mới", DE: "Gel Neumodellage"},
		Category: catGel,
		Price:    45, PriceFrom: true, Duration: 90,
	},
	{
		ID:       "gel-refill",
		Name:     Name{EN: "Gel Refill", VI: "Dặm Gel", DE: "Gel Auffüllen"},
		Category: catGel,
		Price:    35, PriceFrom: true, Duration: 60,
	},
	{
		ID:       "acrylic-new-set",
		Name:     Name{EN: "Acrylic New Set", VI: "Đắp Bột Mới", DE: "Acryl Neumodellage"},
		Category: catAcrylic,
		Price:    45, PriceFrom: true, Duration: 90,
	},
	{
		ID:       "acrylic-refill",
		Name:     Name{EN: "Acrylic Refill", VI: "Dặm Bột", DE: "Acryl Auffüllen"},
		Category: catAcrylic,
		Price:    35, PriceFrom: true, Duration: 60,
	},
	{
		ID:       "nail-art",
		Name:     Name{EN: "Nail Art (per nail)", VI: "Vẽ Móng (mỗi móng)", DE: "Nailart (pro Nagel)"},
		Category: catDesign,
		Price:    2, PriceFrom: true, Duration: 10,
	},
	{
		ID:       "french-tips",
		Name:     Name{EN: "French Tips", VI: "Đầu Móng Kiểu Pháp", DE: "French Spitzen"},
		Category: catDesign,
		Price:    10, Duration: 20,
	},
}
