package fallback

import (
	"marvelous/internal/branch"
	"marvelous/internal/types"
)

var sampleEquipment = []types.Equipment{
	{
		ID: "e1", Name: "Sony A7R V", Category: types.CatCamera, Status: types.EquipInUse,
		SerialNumber: "SN-7842-X", Branch: branch.France,
		AssignedTo: "Alex Riva", CurrentProject: "Mariage Paris",
	},
	{
		ID: "e2", Name: "DJI Mavic 3 Pro", Category: types.CatDrone, Status: types.EquipAvailable,
		SerialNumber: "DRN-442-A", Branch: branch.France,
	},
	{
		ID: "e5", Name: "Red Komodo 6K", Category: types.CatCamera, Status: types.EquipInUse,
		SerialNumber: "RED-112-K", Branch: branch.Cameroun,
		AssignedTo: "Samuel Ndjock", CurrentProject: "Shooting Akwa",
	},
	{
		ID: "e6", Name: "Kit Profoto B10X", Category: types.CatEclairage, Status: types.EquipAvailable,
		SerialNumber: "LIT-221-Z", Branch: branch.Cameroun,
	},
}

var sampleSessions = []types.StudioSession{
	{
		ID: "1", ClientName: "Julie Verne", Branch: branch.France, Type: "Maternité",
		Date: "2024-06-18", Duration: "2h", Photographer: "Alex Riva", Status: "Scheduled",
	},
	{
		ID: "2", ClientName: "Famille Ewane", Branch: branch.Cameroun, Type: "Famille",
		Date: "2024-06-19", Duration: "3h", Photographer: "Samuel Ndjock", Status: "Scheduled",
	},
}

var sampleStudioClients = []types.StudioClient{
	{
		ID: "sc1", Name: "Julie Verne", Branch: branch.France,
		Email: "julie.v@gmail.com", Phone: "06 44 21 87 09",
		LastSession: "2024-04-02", TotalSpent: 780,
	},
	{
		ID: "sc2", Name: "Famille Ewane", Branch: branch.Cameroun,
		Email: "ewane.family@yahoo.fr", Phone: "+237 690 55 43 21",
		LastSession: "2024-03-22", TotalSpent: 320000,
	},
	{
		ID: "sc3", Name: "Hugo Lefèvre", Branch: branch.France,
		Email: "h.lefevre@orange.fr", Phone: "07 12 90 33 48",
		LastSession: "2024-05-11", TotalSpent: 1450,
	},
}

var sampleExpenses = []types.StudioExpense{
	{
		ID: "x1", Branch: branch.France, Category: "Loyer/Charges", Type: types.ExpenseFixed,
		Amount: 2400, Date: "2024-05-01", Description: "Loyer studio Paris 11e",
	},
	{
		ID: "x2", Branch: branch.France, Category: "Consommables", Type: types.ExpenseVariable,
		Amount: 310, Date: "2024-05-14", Description: "Fonds papier + tirages test",
	},
	{
		ID: "x3", Branch: branch.Cameroun, Category: "Loyer/Charges", Type: types.ExpenseFixed,
		Amount: 850000, Date: "2024-05-01", Description: "Loyer studio Akwa",
	},
	{
		ID: "x4", Branch: branch.Cameroun, Category: "Maintenance", Type: types.ExpenseVariable,
		Amount: 120000, Date: "2024-05-20", Description: "Révision Red Komodo",
	},
}

// Equipment returns the gear inventory.
func Equipment() []types.Equipment {
	out := make([]types.Equipment, len(sampleEquipment))
	copy(out, sampleEquipment)
	return out
}

// Sessions returns the studio booking calendar.
func Sessions() []types.StudioSession {
	out := make([]types.StudioSession, len(sampleSessions))
	copy(out, sampleSessions)
	return out
}

// StudioClients returns the walk-in client book.
func StudioClients() []types.StudioClient {
	out := make([]types.StudioClient, len(sampleStudioClients))
	copy(out, sampleStudioClients)
	return out
}

// Expenses returns the studio cost ledger. Amounts are native to each
// branch's currency.
func Expenses() []types.StudioExpense {
	out := make([]types.StudioExpense, len(sampleExpenses))
	copy(out, sampleExpenses)
	return out
}
