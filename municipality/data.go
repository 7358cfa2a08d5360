package municipality

// 2025 municipal plus regional income tax rates, in percent, for the
// larger municipalities. Source: SCB.
var table = []Municipality{
	// Stockholm
	{Name: "Stockholm", County: "Stockholm", TotalTax: 30.6, MunicipalTax: 18.09, RegionalTax: 12.51},
	{Name: "Huddinge", County: "Stockholm", TotalTax: 30.33, MunicipalTax: 17.82, RegionalTax: 12.51},
	{Name: "Sollentuna", County: "Stockholm", TotalTax: 29.83, MunicipalTax: 17.32, RegionalTax: 12.51},
	{Name: "Södertälje", County: "Stockholm", TotalTax: 31.07, MunicipalTax: 18.56, RegionalTax: 12.51},
	{Name: "Järfälla", County: "Stockholm", TotalTax: 30.19, MunicipalTax: 17.68, RegionalTax: 12.51},
	{Name: "Botkyrka", County: "Stockholm", TotalTax: 31.12, MunicipalTax: 18.61, RegionalTax: 12.51},
	{Name: "Haninge", County: "Stockholm", TotalTax: 31.05, MunicipalTax: 18.54, RegionalTax: 12.51},
	{Name: "Tyresö", County: "Stockholm", TotalTax: 29.84, MunicipalTax: 17.33, RegionalTax: 12.51},
	{Name: "Österåker", County: "Stockholm", TotalTax: 28.98, MunicipalTax: 16.47, RegionalTax: 12.51},
	{Name: "Nacka", County: "Stockholm", TotalTax: 29.82, MunicipalTax: 17.31, RegionalTax: 12.51},
	{Name: "Lidingö", County: "Stockholm", TotalTax: 29.52, MunicipalTax: 17.01, RegionalTax: 12.51},
	{Name: "Solna", County: "Stockholm", TotalTax: 29.51, MunicipalTax: 17.0, RegionalTax: 12.51},
	{Name: "Sundbyberg", County: "Stockholm", TotalTax: 29.51, MunicipalTax: 17.0, RegionalTax: 12.51},
	{Name: "Danderyd", County: "Stockholm", TotalTax: 29.48, MunicipalTax: 16.97, RegionalTax: 12.51},
	{Name: "Ekerö", County: "Stockholm", TotalTax: 30.06, MunicipalTax: 17.55, RegionalTax: 12.51},
	{Name: "Upplands Väsby", County: "Stockholm", TotalTax: 30.2, MunicipalTax: 17.69, RegionalTax: 12.51},
	{Name: "Täby", County: "Stockholm", TotalTax: 29.52, MunicipalTax: 17.01, RegionalTax: 12.51},
	{Name: "Vallentuna", County: "Stockholm", TotalTax: 29.86, MunicipalTax: 17.35, RegionalTax: 12.51},
	{Name: "Sigtuna", County: "Stockholm", TotalTax: 30.47, MunicipalTax: 17.96, RegionalTax: 12.51},
	{Name: "Nynäshamn", County: "Stockholm", TotalTax: 31.28, MunicipalTax: 18.77, RegionalTax: 12.51},

	// Västra Götaland
	{Name: "Göteborg", County: "Västra Götaland", TotalTax: 32.15, MunicipalTax: 21.12, RegionalTax: 11.03},
	{Name: "Mölndal", County: "Västra Götaland", TotalTax: 32.04, MunicipalTax: 21.01, RegionalTax: 11.03},
	{Name: "Partille", County: "Västra Götaland", TotalTax: 31.52, MunicipalTax: 20.49, RegionalTax: 11.03},
	{Name: "Kungälv", County: "Västra Götaland", TotalTax: 31.88, MunicipalTax: 20.85, RegionalTax: 11.03},
	{Name: "Ale", County: "Västra Götaland", TotalTax: 32.02, MunicipalTax: 20.99, RegionalTax: 11.03},
	{Name: "Lerum", County: "Västra Götaland", TotalTax: 31.68, MunicipalTax: 20.65, RegionalTax: 11.03},
	{Name: "Härryda", County: "Västra Götaland", TotalTax: 31.68, MunicipalTax: 20.65, RegionalTax: 11.03},
	{Name: "Borås", County: "Västra Götaland", TotalTax: 32.52, MunicipalTax: 21.49, RegionalTax: 11.03},
	{Name: "Trollhättan", County: "Västra Götaland", TotalTax: 33.05, MunicipalTax: 22.02, RegionalTax: 11.03},
	{Name: "Uddevalla", County: "Västra Götaland", TotalTax: 32.87, MunicipalTax: 21.84, RegionalTax: 11.03},

	// Skåne
	{Name: "Malmö", County: "Skåne", TotalTax: 32.42, MunicipalTax: 21.09, RegionalTax: 11.33},
	{Name: "Lund", County: "Skåne", TotalTax: 32.17, MunicipalTax: 20.84, RegionalTax: 11.33},
	{Name: "Helsingborg", County: "Skåne", TotalTax: 32.28, MunicipalTax: 20.95, RegionalTax: 11.33},
	{Name: "Trelleborg", County: "Skåne", TotalTax: 32.73, MunicipalTax: 21.4, RegionalTax: 11.33},
	{Name: "Kristianstad", County: "Skåne", TotalTax: 32.74, MunicipalTax: 21.41, RegionalTax: 11.33},
	{Name: "Landskrona", County: "Skåne", TotalTax: 32.86, MunicipalTax: 21.53, RegionalTax: 11.33},
	{Name: "Ängelholm", County: "Skåne", TotalTax: 32.37, MunicipalTax: 21.04, RegionalTax: 11.33},
	{Name: "Eslöv", County: "Skåne", TotalTax: 32.7, MunicipalTax: 21.37, RegionalTax: 11.33},
	{Name: "Ystad", County: "Skåne", TotalTax: 32.84, MunicipalTax: 21.51, RegionalTax: 11.33},
	{Name: "Hässleholm", County: "Skåne", TotalTax: 32.83, MunicipalTax: 21.5, RegionalTax: 11.33},
	{Name: "Burlöv", County: "Skåne", TotalTax: 32.33, MunicipalTax: 21.0, RegionalTax: 11.33},
	{Name: "Lomma", County: "Skåne", TotalTax: 31.71, MunicipalTax: 20.38, RegionalTax: 11.33},
	{Name: "Staffanstorp", County: "Skåne", TotalTax: 31.87, MunicipalTax: 20.54, RegionalTax: 11.33},
	{Name: "Vellinge", County: "Skåne", TotalTax: 31.29, MunicipalTax: 19.96, RegionalTax: 11.33},
	{Name: "Kävlinge", County: "Skåne", TotalTax: 31.88, MunicipalTax: 20.55, RegionalTax: 11.33},

	// Uppsala
	{Name: "Uppsala", County: "Uppsala", TotalTax: 32.01, MunicipalTax: 20.77, RegionalTax: 11.24},
	{Name: "Enköping", County: "Uppsala", TotalTax: 32.65, MunicipalTax: 21.41, RegionalTax: 11.24},
	{Name: "Sigtuna", County: "Uppsala", TotalTax: 30.47, MunicipalTax: 17.96, RegionalTax: 12.51},

	// Östergötland
	{Name: "Linköping", County: "Östergötland", TotalTax: 32.8, MunicipalTax: 21.42, RegionalTax: 11.38},
	{Name: "Norrköping", County: "Östergötland", TotalTax: 32.86, MunicipalTax: 21.48, RegionalTax: 11.38},
	{Name: "Motala", County: "Östergötland", TotalTax: 33.22, MunicipalTax: 21.84, RegionalTax: 11.38},

	// Örebro
	{Name: "Örebro", County: "Örebro", TotalTax: 32.85, MunicipalTax: 21.36, RegionalTax: 11.49},
	{Name: "Karlskoga", County: "Örebro", TotalTax: 33.76, MunicipalTax: 22.27, RegionalTax: 11.49},
	{Name: "Kumla", County: "Örebro", TotalTax: 32.79, MunicipalTax: 21.3, RegionalTax: 11.49},

	// Värmland
	{Name: "Karlstad", County: "Värmland", TotalTax: 33.33, MunicipalTax: 21.78, RegionalTax: 11.55},
	{Name: "Kristinehamn", County: "Värmland", TotalTax: 33.71, MunicipalTax: 22.16, RegionalTax: 11.55},
	{Name: "Arvika", County: "Värmland", TotalTax: 33.91, MunicipalTax: 22.36, RegionalTax: 11.55},

	// Jönköping
	{Name: "Jönköping", County: "Jönköping", TotalTax: 32.78, MunicipalTax: 21.6, RegionalTax: 11.18},
	{Name: "Värnamo", County: "Jönköping", TotalTax: 32.78, MunicipalTax: 21.6, RegionalTax: 11.18},

	// Halland
	{Name: "Halmstad", County: "Halland", TotalTax: 32.5, MunicipalTax: 21.39, RegionalTax: 11.11},
	{Name: "Varberg", County: "Halland", TotalTax: 31.97, MunicipalTax: 20.86, RegionalTax: 11.11},
	{Name: "Kungsbacka", County: "Halland", TotalTax: 31.32, MunicipalTax: 20.21, RegionalTax: 11.11},

	// Västmanland
	{Name: "Västerås", County: "Västmanland", TotalTax: 32.69, MunicipalTax: 21.51, RegionalTax: 11.18},

	// Södermanland
	{Name: "Eskilstuna", County: "Södermanland", TotalTax: 32.68, MunicipalTax: 21.71, RegionalTax: 10.97},

	// Gävleborg
	{Name: "Gävle", County: "Gävleborg", TotalTax: 33.42, MunicipalTax: 22.26, RegionalTax: 11.16},
	{Name: "Sandviken", County: "Gävleborg", TotalTax: 33.75, MunicipalTax: 22.59, RegionalTax: 11.16},

	// Dalarna
	{Name: "Falun", County: "Dalarna", TotalTax: 33.71, MunicipalTax: 22.06, RegionalTax: 11.65},
	{Name: "Borlänge", County: "Dalarna", TotalTax: 33.96, MunicipalTax: 22.31, RegionalTax: 11.65},

	// Västernorrland
	{Name: "Sundsvall", County: "Västernorrland", TotalTax: 33.89, MunicipalTax: 22.13, RegionalTax: 11.76},
	{Name: "Örnsköldsvik", County: "Västernorrland", TotalTax: 33.91, MunicipalTax: 22.15, RegionalTax: 11.76},

	// Västerbotten
	{Name: "Umeå", County: "Västerbotten", TotalTax: 33.89, MunicipalTax: 22.08, RegionalTax: 11.81},
	{Name: "Skellefteå", County: "Västerbotten", TotalTax: 33.96, MunicipalTax: 22.15, RegionalTax: 11.81},

	// Norrbotten
	{Name: "Luleå", County: "Norrbotten", TotalTax: 33.81, MunicipalTax: 22.1, RegionalTax: 11.71},
	{Name: "Piteå", County: "Norrbotten", TotalTax: 33.83, MunicipalTax: 22.12, RegionalTax: 11.71},
}
