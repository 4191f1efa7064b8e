package nba

import "github.com/fortuna/courtside/internal/directory"

// Teams is the current franchise table, keyed by stats.nba.com team ids
var Teams = []directory.TeamIdentity{
	{ID: 1610612737, Name: "Atlanta Hawks", Abbreviation: "ATL"},
	{ID: 1610612738, Name: "Boston Celtics", Abbreviation: "BOS"},
	{ID: 1610612739, Name: "Cleveland Cavaliers", Abbreviation: "CLE"},
	{ID: 1610612740, Name: "New Orleans Pelicans", Abbreviation: "NOP"},
	{ID: 1610612741, Name: "Chicago Bulls", Abbreviation: "CHI"},
	{ID: 1610612742, Name: "Dallas Mavericks", Abbreviation: "DAL"},
	{ID: 1610612743, Name: "Denver Nuggets", Abbreviation: "DEN"},
	{ID: 1610612744, Name: "Golden State Warriors", Abbreviation: "GSW"},
	{ID: 1610612745, Name: "Houston Rockets", Abbreviation: "HOU"},
	{ID: 1610612746, Name: "Los Angeles Clippers", Abbreviation: "LAC"},
	{ID: 1610612747, Name: "Los Angeles Lakers", Abbreviation: "LAL"},
	{ID: 1610612748, Name: "Miami Heat", Abbreviation: "MIA"},
	{ID: 1610612749, Name: "Milwaukee Bucks", Abbreviation: "MIL"},
	{ID: 1610612750, Name: "Minnesota Timberwolves", Abbreviation: "MIN"},
	{ID: 1610612751, Name: "Brooklyn Nets", Abbreviation: "BKN"},
	{ID: 1610612752, Name: "New York Knicks", Abbreviation: "NYK"},
	{ID: 1610612753, Name: "Orlando Magic", Abbreviation: "ORL"},
	{ID: 1610612754, Name: "Indiana Pacers", Abbreviation: "IND"},
	{ID: 1610612755, Name: "Philadelphia 76ers", Abbreviation: "PHI"},
	{ID: 1610612756, Name: "Phoenix Suns", Abbreviation: "PHX"},
	{ID: 1610612757, Name: "Portland Trail Blazers", Abbreviation: "POR"},
	{ID: 1610612758, Name: "Sacramento Kings", Abbreviation: "SAC"},
	{ID: 1610612759, Name: "San Antonio Spurs", Abbreviation: "SAS"},
	{ID: 1610612760, Name: "Oklahoma City Thunder", Abbreviation: "OKC"},
	{ID: 1610612761, Name: "Toronto Raptors", Abbreviation: "TOR"},
	{ID: 1610612762, Name: "Utah Jazz", Abbreviation: "UTA"},
	{ID: 1610612763, Name: "Memphis Grizzlies", Abbreviation: "MEM"},
	{ID: 1610612764, Name: "Washington Wizards", Abbreviation: "WAS"},
	{ID: 1610612765, Name: "Detroit Pistons", Abbreviation: "DET"},
	{ID: 1610612766, Name: "Charlotte Hornets", Abbreviation: "CHA"},
}
