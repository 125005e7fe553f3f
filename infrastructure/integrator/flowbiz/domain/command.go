package domain

import "sort"

// Comandos do Flowbiz usados diretamente pelos serviços
const (
	CommandCampaignGet       = "Campaign.Get"
	CommandCampaignCreate    = "Campaign.Create"
	CommandCampaignUpdate    = "Campaign.Update"
	CommandCampaignsGet      = "Campaigns.Get"
	CommandCampaignsDelete   = "Campaigns.Delete"
	CommandCampaignsArchive  = "Campaigns.Archive.GetURL"
	CommandListCreate        = "List.Create"
	CommandCustomFieldCreate = "CustomField.Create"
	CommandSegmentCreate     = "Segment.Create"
)

// RouteCommands mapeia as rotas públicas /api/<rota> para os comandos do Flowbiz
var RouteCommands = map[string]string{
	"subscribers/get":             "Subscribers.Get",
	"subscribers/delete":          "Subscribers.Delete",
	"subscribers/import":          "Subscribers.Import",
	"subscriber/get":              "Subscriber.Get",
	"subscriber/subscribe":        "Subscriber.Subscribe",
	"subscriber/optin":            "Subscriber.Optin",
	"subscriber/unsubscribe":      "Subscriber.Unsubscribe",
	"subscriber/update":           "Subscriber.Update",
	"subscriber/login":            "Subscriber.Login",
	"subscriber/get-lists":        "Subscriber.GetLists",
	"subscriber/interactions":     "Subscriber.Interactions",
	"subscriber/get-optout":       "Subscriber.GetOptOut",
	"media/upload":                "Media.Upload",
	"media/retrieve":              "Media.Retrieve",
	"media/browse":                "Media.Browse",
	"campaign/get":                CommandCampaignGet,
	"campaign/create":             CommandCampaignCreate,
	"campaign/update":             CommandCampaignUpdate,
	"campaigns/get":               CommandCampaignsGet,
	"campaigns/delete":            CommandCampaignsDelete,
	"campaigns/archive-url":       CommandCampaignsArchive,
	"custom-field/create":         CommandCustomFieldCreate,
	"custom-field/update":         "CustomField.Update",
	"custom-fields/copy":          "CustomFields.Copy",
	"custom-fields/delete":        "CustomFields.Delete",
	"custom-fields/get":           "CustomFields.Get",
	"autoresponder/create":        "AutoResponder.Create",
	"autoresponder/update":        "AutoResponder.Update",
	"autoresponder/get":           "AutoResponder.Get",
	"autoresponder/delete":        "AutoResponder.Delete",
	"autoresponder/webhook":       "AutoResponder.Webhook",
	"autoresponder/sequences":     "AutoResponder.Sequences",
	"list/create":                 CommandListCreate,
	"list/update":                 "List.Update",
	"list/get":                    "List.Get",
	"lists/get":                   "Lists.Get",
	"lists/delete":                "Lists.Delete",
	"segment/create":              CommandSegmentCreate,
	"segment/update":              "Segment.Update",
	"segment/get":                 "Segment.Get",
	"segments/delete":             "Segments.Delete",
	"segments/copy":               "Segments.Copy",
	"tag/create":                  "Tag.Create",
	"tag/update":                  "Tag.Update",
	"tags/get":                    "Tags.Get",
	"tags/delete":                 "Tags.Delete",
	"tag/assign-to-campaigns":     "Tag.AssignToCampaigns",
	"tag/unassign-from-campaigns": "Tag.UnassignFromCampaigns",
}

// CampaignActions é a lista de ações aceitas em /api/campaigns/manage
var CampaignActions = map[string]string{
	"get":         CommandCampaignGet,
	"create":      CommandCampaignCreate,
	"update":      CommandCampaignUpdate,
	"list":        CommandCampaignsGet,
	"delete":      CommandCampaignsDelete,
	"archive-url": CommandCampaignsArchive,
}

// SortedKeys devolve as chaves de um mapa de comandos em ordem alfabética
func SortedKeys(commands map[string]string) []string {
	keys := make([]string, 0, len(commands))
	for key := range commands {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
