package whatsapp

import (
	"ShopAssist/database/postgres"
	"context"
	"fmt"
	"time"

	"go.mau.fi/whatsmeow"
	waProto "go.mau.fi/whatsmeow/binary/proto"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	waLog "go.mau.fi/whatsmeow/util/log"
	"google.golang.org/protobuf/proto"
)

type Message struct {
	PhoneNumber string
	Text        string
}

// MessageHandler turns an inbound WhatsApp text into a reply. An empty reply
// suppresses the outbound message.
type MessageHandler func(ctx context.Context, sender, text string) (string, error)

type IWhatsappChannel interface {
	SendMessage(ctx context.Context, phoneNumber, message string) error
	OnMessage(handler MessageHandler)
	Disconnect() error
	IsConnected() bool
}

type whatsappChannel struct {
	client  *whatsmeow.Client
	handler MessageHandler
}

func New() (IWhatsappChannel, error) {
	dsn := postgres.FormatDSN()

	dbLog := waLog.Stdout("Database", "INFO", true)
	container, err := sqlstore.New("postgres", dsn, dbLog)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	deviceStore, err := container.GetFirstDevice()
	if err != nil {
		return nil, fmt.Errorf("failed to get device store: %w", err)
	}

	client := whatsmeow.NewClient(deviceStore, waLog.Stdout("Client", "INFO", true))

	w := &whatsappChannel{client: client}

	connected := make(chan bool)
	client.AddEventHandler(func(evt interface{}) {
		switch v := evt.(type) {
		case *events.Connected:
			select {
			case connected <- true:
			default:
			}
		case *events.Message:
			w.handleIncoming(v)
		}
	})

	if client.Store.ID == nil {
		qrChan, _ := client.GetQRChannel(context.Background())
		if err := client.Connect(); err != nil {
			return nil, fmt.Errorf("failed to connect: %w", err)
		}

		go func() {
			for evt := range qrChan {
				if evt.Event == "code" {
					fmt.Println("QR Code:", evt.Code)
				}
			}
		}()
	} else {
		if err := client.Connect(); err != nil {
			return nil, fmt.Errorf("failed to connect: %w", err)
		}
	}

	select {
	case <-connected:
		fmt.Println("WhatsApp connected")
	case <-time.After(60 * time.Second):
		return nil, fmt.Errorf("connection timeout")
	}

	return w, nil
}

func (w *whatsappChannel) OnMessage(handler MessageHandler) {
	w.handler = handler
}

func (w *whatsappChannel) handleIncoming(evt *events.Message) {
	if w.handler == nil || evt.Info.IsFromMe || evt.Info.IsGroup {
		return
	}

	text := evt.Message.GetConversation()
	if text == "" {
		if ext := evt.Message.GetExtendedTextMessage(); ext != nil {
			text = ext.GetText()
		}
	}
	if text == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	reply, err := w.handler(ctx, evt.Info.Sender.User, text)
	if err != nil {
		fmt.Println("Failed to handle WhatsApp message:", err)
		return
	}
	if reply == "" {
		return
	}

	if err := w.SendMessage(ctx, evt.Info.Sender.User, reply); err != nil {
		fmt.Println("Failed to send WhatsApp reply:", err)
	}
}

func (w *whatsappChannel) SendMessage(ctx context.Context, phoneNumber, message string) error {
	jid := types.NewJID(phoneNumber, types.DefaultUserServer)

	waMsg := &waProto.Message{
		Conversation: proto.String(message),
	}

	_, err := w.client.SendMessage(ctx, jid, waMsg)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func (w *whatsappChannel) Disconnect() error {
	w.client.Disconnect()
	return nil
}

func (w *whatsappChannel) IsConnected() bool {
	return w.client.IsConnected()
}
