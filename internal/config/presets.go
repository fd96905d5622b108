package config

// Scenario names group presets by the preflop spot they cover.
const (
	ScenarioOpen      = "open"
	ScenarioBBCall    = "bb_call"
	ScenarioSB3Bet    = "sb_3bet"
	ScenarioBB3Bet    = "bb_3bet"
	ScenarioBBCallSB3 = "bb_call_sb_3bet"
	ScenarioBTN3Bet   = "btn_3bet"
)

// DefaultPresets returns the built-in six-max chart library.
func DefaultPresets() []Preset {
	return []Preset{
		{Name: "open_btn", Scenario: ScenarioOpen, Description: "Button open",
			Range: "22+, A2s+, K2s+, Q3s+, J6s+, T7s+, 97s+, 86s+, 75s+, 64s+, 54s+, 43s+, 32s, A2o+, K6o+, Q8o+, J8o+, T8o+, 97o+, 87o+, 76o, 65o, 54o"},
		{Name: "open_co", Scenario: ScenarioOpen, Description: "Cutoff open",
			Range: "22+, A2s+, K5s+, Q7s+, J8s+, T8s+, 97s+, 86s+, 75s+, 64s+, 53s+, 98s, 87s, 76s, 65s, 54s, 43s, 32s, A2o+, K8o+, Q9o+, J9o+, T9o+, 98o, 87o, 76o, 65o"},
		{Name: "open_hj", Scenario: ScenarioOpen, Description: "Hijack open",
			Range: "22+, A2s+, K7s+, Q8s+, J8s+, T8s+, 97s+, 86s+, 75s+, 64s+, 53s+, 98s, 87s, 76s, 65s, 54s, 43s, A8o+, KTo+, QTo+, JTo+"},
		{Name: "open_lj", Scenario: ScenarioOpen, Description: "Lojack open",
			Range: "22+, A2s+, K7s+, Q8s+, J8s+, T8s+, 97s+, 86s+, 75s+, 64s+, 53s+, 98s, 87s, 76s, 65s, 54s, 43s, AJo+, KQo"},
		{Name: "open_sb", Scenario: ScenarioOpen, Description: "Small blind open",
			Range: "22+, A2s+, K2s+, Q2s+, J6s+, T6s+, 96s+, 86s+, 75s+, 65s+, A2o+, K7o+, Q8o+, J8o+, T8o+, 98o"},

		{Name: "bb_call_vs_sb", Scenario: ScenarioBBCall, Description: "Big blind flat vs small blind open",
			Range: "22-99, A2s-A9s, K2s-K9s, Q2s-QTs, J2s-JTs, T2s-T9s, 87s, 76s, 65s, KTo, QTo, K8o, Q8o, J8o, 97s, 98s, 86s, 75s, 64s, 54s, 43s, 32s, A2o-A9o, K9o, KJo, KQo, Q9o, QJo, J9o, JTo, T9o"},
		{Name: "bb_call_vs_btn", Scenario: ScenarioBBCall, Description: "Big blind flat vs button open",
			Range: "22-66, A6s-A8s, K2s-K9s, Q2s-Q9s, J5s-J9s, T5s-T8s, 96s-98s, 85s-87s, 74s-76s, 64s, 65s, 53s, 54s, 43s, A3o-ATo, K9o-KQo, Q9o, QTo, JTo, J9o"},
		{Name: "bb_call_vs_co", Scenario: ScenarioBBCall, Description: "Big blind flat vs cutoff open",
			Range: "22-99, A2s-A9s, K7s-K9s, Q8s-QTs, J8s-JTs, T8s, T9s, 97s, 98s, 86s, 87s, 75s, 76s, 64s, 65s, 54s, A9o, ATo, KJo, KQo, QJo, JTo"},
		{Name: "bb_call_vs_hj", Scenario: ScenarioBBCall, Description: "Big blind flat vs hijack open",
			Range: "22-99, 54s, 65s, 87s, 98s, T9s, JTs, A2s-A7s, K2s-K8s, Q4s-Q7s, J6s+, T7s+, 97s, 75s+, 76s, ATo, AJo, KTo, KJo, KQo, QTo, QJo, JTo"},

		{Name: "sb_3bet_vs_btn", Scenario: ScenarioSB3Bet, Description: "Small blind 3-bet vs button",
			Range: "66+, A7s+, A5s, A4s, A3s, K9s+, Q9s+, J9s+, T8s+, 98s, ATo+, KJo+"},
		{Name: "sb_3bet_vs_ep", Scenario: ScenarioSB3Bet, Description: "Small blind 3-bet vs early position",
			Range: "99+, A3s, A4s, A5s, ATs+, KTs+, QTs+, AQo+, KQo"},
		{Name: "bb_3bet_vs_btn", Scenario: ScenarioBB3Bet, Description: "Big blind 3-bet vs button",
			Range: "77+, A9s+, A5s, A4s, A3s, A2s, KTs+, Q9s+, J9s, JTs, T8s, T9s, 98s, 87s, 76s, A7o+, KTo+, QTo+"},
		{Name: "bb_3bet_vs_ep", Scenario: ScenarioBB3Bet, Description: "Big blind 3-bet vs early position",
			Range: "77+, A2s-A5s, AJs+, KTs+, QTs+, JTs, ATo+, KTo+"},
		{Name: "bb_call_sb_3bet_btn", Scenario: ScenarioBBCallSB3, Description: "Big blind cold call of a small blind 3-bet vs button",
			Range: "55-JJ, A2s-AQs, K9s+, QTs+, J9s+, T8s+, 98s, 87s, 76s, 65s, 54s"},
		{Name: "bb_call_sb_3bet_ep", Scenario: ScenarioBBCallSB3, Description: "Big blind cold call of a small blind 3-bet vs early position",
			Range: "55-QQ, ATs-AQs, KTs+, QTs+, JTs, T9s, 98s, 87s, 76s, 65s, 54s"},
		{Name: "btn_3bet_vs_co", Scenario: ScenarioBTN3Bet, Description: "Button 3-bet vs cutoff",
			Range: "88+, A4s+, K9s+, Q9s+, J9s+, T9s, ATo+, KJo+"},
		{Name: "btn_3bet_vs_lj", Scenario: ScenarioBTN3Bet, Description: "Button 3-bet vs lojack",
			Range: "TT+, ATs+, A4s, A5s, KTs+, QTs+, AJo+, KQo"},
	}
}
