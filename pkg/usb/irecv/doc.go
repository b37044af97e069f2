// Package irecv talks to the low-level boot environments of Apple mobile
// devices over USB: DFU, WTF, Recovery (iBoot/iBSS), Port-DFU and KIS
// ("Debug USB") mode. It discovers attached devices, identifies the exact
// hardware model, uploads firmware images, issues text commands to the
// bootloader, reads and sets environment variables, and reports hot-plug
// events.
//
// It does not restore firmware end-to-end, validate firmware authenticity,
// or drive the Port-DFU restore flow beyond recognising a device in that
// mode; those belong to a higher layer.
package irecv
