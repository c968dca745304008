package ds1302

// The chip counts years from 2000, Datetime counts from 1970.
const yearOffset = 30

// Positions of the eight registers inside a burst image.
const (
	imgSeconds = iota
	imgMinutes
	imgHours
	imgDate
	imgMonth
	imgDay
	imgYear
	imgEnable
)

// hour is the decoded content of the hours register. The register holds one
// of two layouts, distinguished by the mode bit: a 24-hour value, or a
// 12-hour value plus an AM/PM flag.
type hour struct {
	twelve bool
	pm     bool
	value  uint8
}

func decodeHour(reg uint8) hour {
	if reg&hourMode12 != 0 {
		return hour{
			twelve: true,
			pm:     reg&hourPM != 0,
			value:  bcdToDec(reg & 0x1F),
		}
	}
	return hour{value: bcdToDec(reg & 0x3F)}
}

// clock24 folds either layout to a 0-23 hour. In the 12-hour layout PM adds
// twelve; the AM/PM bit has no meaning in the 24-hour layout, where it is
// part of the tens digit instead.
func (h hour) clock24() uint8 {
	if h.twelve && h.pm {
		return h.value + 12
	}
	return h.value
}

// encodeHour always emits the 24-hour layout, mode bit clear.
func encodeHour(h uint8) uint8 {
	return decToBcd(h) & 0x3F
}

// decodeClock unpacks a burst image into a calendar record. Each field is a
// BCD pair masked down to its own width; the surrounding flag bits
// (clock-halt, write-protect) are stripped here and read separately.
func decodeClock(buf [8]uint8) Datetime {
	return Datetime{
		Seconds: bcdToDec(buf[imgSeconds] & 0x7F),
		Minutes: bcdToDec(buf[imgMinutes] & 0x7F),
		Hour:    decodeHour(buf[imgHours]).clock24(),
		Day:     bcdToDec(buf[imgDate] & 0x3F),
		Month:   bcdToDec(buf[imgMonth] & 0x1F),
		Weekday: buf[imgDay] & 0x07,
		Year:    bcdToDec(buf[imgYear]) + yearOffset,
	}
}

// encodeClock packs a calendar record into a fresh burst image. The zero
// value of the array keeps every reserved bit deterministic and leaves the
// clock-halt and write-protect flags cleared, so writing the image starts
// the oscillator and keeps the registers writable.
func encodeClock(t Datetime) [8]uint8 {
	var buf [8]uint8
	buf[imgSeconds] = decToBcd(t.Seconds) & 0x7F
	buf[imgMinutes] = decToBcd(t.Minutes) & 0x7F
	buf[imgHours] = encodeHour(t.Hour)
	buf[imgDate] = decToBcd(t.Day) & 0x3F
	buf[imgMonth] = decToBcd(t.Month) & 0x1F
	buf[imgDay] = t.Weekday & 0x07
	buf[imgYear] = decToBcd(t.Year - yearOffset)
	return buf
}

// decToBcd converts int to BCD
func decToBcd(dec uint8) uint8 {
	return dec + 6*(dec/10)
}

// bcdToDec converts BCD to int
func bcdToDec(bcd uint8) uint8 {
	return bcd - 6*(bcd>>4)
}
