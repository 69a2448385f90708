package store

// seed populates the fixed users, catalog and leaderboard. Called once by New.
func (s *Store) seed() {
	s.users = map[string]*User{
		"admin":     {ID: "admin", Username: "admin", Points: 1500, Rank: "👑 Elite Hacker", Level: 99},
		"ghost":     {ID: "ghost", Username: "ghost_1337", Points: 800, Rank: "👻 Ghost", Level: 42},
		"crypto":    {ID: "crypto", Username: "crypto_master", Points: 650, Rank: "🔐 Cryptographer", Level: 35},
		"netrunner": {ID: "netrunner", Username: "net_runner", Points: 520, Rank: "🌐 Network Ninja", Level: 28},
	}

	s.leaderboard = []LeaderboardEntry{
		{Username: "admin", Points: 1500, Rank: "👑 Elite Hacker"},
		{Username: "ghost_1337", Points: 800, Rank: "👻 Ghost"},
		{Username: "crypto_master", Points: 650, Rank: "🔐 Cryptographer"},
		{Username: "net_runner", Points: 520, Rank: "🌐 Network Ninja"},
		{Username: "binary_bender", Points: 480, Rank: "💾 Binary Breaker"},
		{Username: "script_kiddie", Points: 350, Rank: "📟 Script Kiddie"},
		{Username: "dark_matter", Points: 280, Rank: "⚫ Dark Matter"},
		{Username: "zero_cool", Points: 220, Rank: "❄️ Zero Cool"},
		{Username: "acid_burn", Points: 180, Rank: "🔥 Acid Burn"},
		{Username: "crash_override", Points: 150, Rank: "💥 Crash Override"},
	}

	s.games = []Game{
		{ID: "password_cracker", Name: "🔐 Password Cracker", Description: "Crack MD5 hashes to find passwords", Difficulty: "Easy", Points: 50},
		{ID: "network_scanner", Name: "🌐 Network Scanner", Description: "Scan networks and find open ports", Difficulty: "Medium", Points: 100},
		{ID: "cryptography", Name: "🔏 Cryptography", Description: "Decrypt encoded messages", Difficulty: "Hard", Points: 150},
		{ID: "binary_exploit", Name: "💾 Binary Exploit", Description: "Find and exploit buffer overflows", Difficulty: "Expert", Points: 200},
		{ID: "ctf", Name: "🏴 CTF Challenge", Description: "Capture The Flag - Multi-level challenge", Difficulty: "Insane", Points: 500},
	}
}
