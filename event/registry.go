package event

import (
	"fmt"
	"reflect"
)

var (
	typeToName    = make(map[EventType]string)
	nameToType    = make(map[string]EventType)
	typeToPayload = make(map[EventType]reflect.Type)
)

// RegisterType maps a name to an EventType and its payload struct type
// payloadInstance should be a pointer to the payload struct, nil if the event has no payload
func RegisterType(name string, et EventType, payloadInstance any) {
	nameToType[name] = et
	typeToName[et] = name
	if payloadInstance != nil {
		t := reflect.TypeOf(payloadInstance)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		typeToPayload[et] = t
	}
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the registered name for an EventType
func GetEventName(et EventType) string {
	if name, ok := typeToName[et]; ok {
		return name
	}
	return fmt.Sprintf("EventType(%d)", int(et))
}

func (et EventType) String() string {
	return GetEventName(et)
}

// PayloadType returns the registered payload struct type, nil if none
func PayloadType(et EventType) reflect.Type {
	return typeToPayload[et]
}

func init() {
	RegisterType("EnemyShot", EventEnemyShot, &EnemyShotPayload{})
	RegisterType("EnemyExplosion", EventEnemyExplosion, &EnemyExplosionPayload{})
	RegisterType("BeginCaptureAttack", EventBeginCaptureAttack, nil)
	RegisterType("EndCaptureAttack", EventEndCaptureAttack, nil)
	RegisterType("CapturePlayer", EventCapturePlayer, &CapturePlayerPayload{})
	RegisterType("CapturePlayerCompleted", EventCapturePlayerCompleted, nil)
	RegisterType("CaptureSequenceEnded", EventCaptureSequenceEnded, nil)
	RegisterType("SpawnCapturedFighter", EventSpawnCapturedFighter, &SpawnCapturedFighterPayload{})
	RegisterType("RecapturePlayer", EventRecapturePlayer, &RecapturePlayerPayload{})
	RegisterType("EscapeCapturing", EventEscapeCapturing, nil)
	RegisterType("CapturedFighterDestroyed", EventCapturedFighterDestroyed, nil)
	RegisterType("SoundRequest", EventSoundRequest, &SoundRequestPayload{})
	RegisterType("StageStateChanged", EventStageStateChanged, &StageStatePayload{})
}
