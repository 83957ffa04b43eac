package whmcsdomain

import "strings"

// Client é o cliente retornado pela ação GetClients
type Client struct {
	ID          FlexInt `json:"id"`
	FirstName   string  `json:"firstname"`
	LastName    string  `json:"lastname"`
	CompanyName string  `json:"companyname,omitempty"`
	Email       string  `json:"email"`
	DateCreated string  `json:"datecreated"`
	Status      string  `json:"status,omitempty"`
}

// FullName junta nome e sobrenome
func (c Client) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// ClientList é o container "clients" da resposta
type ClientList struct {
	Client OneOrMany[Client] `json:"client"`
}

func (l *ClientList) UnmarshalJSON(data []byte) error {
	if !isObject(data) {
		*l = ClientList{Client: OneOrMany[Client]{}}
		return nil
	}

	type plain ClientList
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	if decoded.Client == nil {
		decoded.Client = OneOrMany[Client]{}
	}

	*l = ClientList(decoded)
	return nil
}

// ClientIDs monta o conjunto de IDs de uma lista de clientes, ignorando ids ilegíveis
func ClientIDs(clients []Client) map[int]struct{} {
	ids := make(map[int]struct{}, len(clients))
	for _, client := range clients {
		if client.ID.Int() <= 0 {
			continue
		}
		ids[client.ID.Int()] = struct{}{}
	}
	return ids
}
