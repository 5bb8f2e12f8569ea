package source

// ContractName is the marketplace contract the ABI below belongs to.
const ContractName = "NFTMarketplaceV3"

// Method names of the four metric queries.
const (
	MethodPerformanceMetrics = "getPerformanceMetrics"
	MethodEfficiencyScores   = "getEfficiencyScores"
	MethodUserExperience     = "getUserExperience"
	MethodScalability        = "getScalability"
)

// MarketplaceABI is the subset of the NFTMarketplaceV3 ABI used by the reporter.
const MarketplaceABI = `[
	{
		"type": "function",
		"name": "getPerformanceMetrics",
		"stateMutability": "view",
		"inputs": [],
		"outputs": [{
			"name": "",
			"type": "tuple",
			"internalType": "struct NFTMarketplaceV3.PerformanceMetrics",
			"components": [
				{"name": "responseTime", "type": "uint256", "internalType": "uint256"},
				{"name": "transactionSpeed", "type": "uint256", "internalType": "uint256"},
				{"name": "throughput", "type": "uint256", "internalType": "uint256"},
				{"name": "uptime", "type": "uint256", "internalType": "uint256"},
				{"name": "errorRate", "type": "uint256", "internalType": "uint256"},
				{"name": "gasEfficiency", "type": "uint256", "internalType": "uint256"}
			]
		}]
	},
	{
		"type": "function",
		"name": "getEfficiencyScores",
		"stateMutability": "view",
		"inputs": [],
		"outputs": [{
			"name": "",
			"type": "tuple",
			"internalType": "struct NFTMarketplaceV3.EfficiencyScores",
			"components": [
				{"name": "marketplaceEfficiency", "type": "uint256", "internalType": "uint256"},
				{"name": "listingEfficiency", "type": "uint256", "internalType": "uint256"},
				{"name": "tradingEfficiency", "type": "uint256", "internalType": "uint256"},
				{"name": "userEngagement", "type": "uint256", "internalType": "uint256"},
				{"name": "revenueEfficiency", "type": "uint256", "internalType": "uint256"}
			]
		}]
	},
	{
		"type": "function",
		"name": "getUserExperience",
		"stateMutability": "view",
		"inputs": [],
		"outputs": [{
			"name": "",
			"type": "tuple",
			"internalType": "struct NFTMarketplaceV3.UserExperience",
			"components": [
				{"name": "interfaceUsability", "type": "uint256", "internalType": "uint256"},
				{"name": "transactionEase", "type": "uint256", "internalType": "uint256"},
				{"name": "mobileCompatibility", "type": "uint256", "internalType": "uint256"},
				{"name": "loadingSpeed", "type": "uint256", "internalType": "uint256"},
				{"name": "customerSatisfaction", "type": "uint256", "internalType": "uint256"}
			]
		}]
	},
	{
		"type": "function",
		"name": "getScalability",
		"stateMutability": "view",
		"inputs": [],
		"outputs": [{
			"name": "",
			"type": "tuple",
			"internalType": "struct NFTMarketplaceV3.Scalability",
			"components": [
				{"name": "userCapacity", "type": "uint256", "internalType": "uint256"},
				{"name": "transactionCapacity", "type": "uint256", "internalType": "uint256"},
				{"name": "storageCapacity", "type": "uint256", "internalType": "uint256"},
				{"name": "networkCapacity", "type": "uint256", "internalType": "uint256"},
				{"name": "futureGrowth", "type": "uint256", "internalType": "uint256"}
			]
		}]
	}
]`
